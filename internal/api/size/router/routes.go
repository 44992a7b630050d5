// Package router đăng ký route cho domain size.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "phone_commerce/internal/api/router"
	sizehdl "phone_commerce/internal/api/size/handler"
)

// Register đăng ký các route /size lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := sizehdl.NewSizeHandler()
	if err != nil {
		return fmt.Errorf("failed to create size handler: %w", err)
	}
	r.RegisterResourceRoutes(v1, "/size", handler, apirouter.DefaultConfig)
	return nil
}

// Package router đăng ký route cho domain repair.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	repairhdl "phone_commerce/internal/api/repair/handler"
	apirouter "phone_commerce/internal/api/router"
)

// Register đăng ký các route /repair lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := repairhdl.NewRepairHandler()
	if err != nil {
		return fmt.Errorf("failed to create repair handler: %w", err)
	}
	r.RegisterResourceRoutes(v1, "/repair", handler, apirouter.DefaultConfig)
	return nil
}

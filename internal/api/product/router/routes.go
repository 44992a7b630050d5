// Package router đăng ký route cho domain product.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	producthdl "phone_commerce/internal/api/product/handler"
	apirouter "phone_commerce/internal/api/router"
)

// Register đăng ký các route /product lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := producthdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %w", err)
	}
	r.RegisterResourceRoutes(v1, "/product", handler, apirouter.DefaultConfig)
	return nil
}

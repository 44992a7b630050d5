// Package router đăng ký route cho domain vendor.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "phone_commerce/internal/api/router"
	vendorhdl "phone_commerce/internal/api/vendors/handler"
)

// Register đăng ký các route /vendor lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := vendorhdl.NewVendorHandler()
	if err != nil {
		return fmt.Errorf("failed to create vendor handler: %w", err)
	}
	r.RegisterResourceRoutes(v1, "/vendor", handler, apirouter.DefaultConfig)
	return nil
}

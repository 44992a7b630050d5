// Package router đăng ký route cho domain shop.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "phone_commerce/internal/api/router"
	shophdl "phone_commerce/internal/api/shop/handler"
)

// Register đăng ký các route /shop lên v1.
// Shop là bảng tenant nên không có get-all-by-shop.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := shophdl.NewShopHandler()
	if err != nil {
		return fmt.Errorf("failed to create shop handler: %w", err)
	}
	r.RegisterResourceRoutes(v1, "/shop", handler, apirouter.GlobalConfig)
	return nil
}

// Package router đăng ký route cho domain productlog.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"phone_commerce/internal/api/middleware"
	productloghdl "phone_commerce/internal/api/productlog/handler"
	apirouter "phone_commerce/internal/api/router"
)

// Register đăng ký các route /product-log lên v1, kèm route restore riêng của domain.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := productloghdl.NewProductLogHandler()
	if err != nil {
		return fmt.Errorf("failed to create product log handler: %w", err)
	}
	r.RegisterResourceRoutes(v1, "/product-log", handler, apirouter.DefaultConfig)

	shopContext := middleware.ShopContext()
	apirouter.RegisterRouteWithMiddleware(v1, "/product-log", "PUT", "/restore/:id", []fiber.Handler{shopContext}, handler.RestoreById)
	return nil
}

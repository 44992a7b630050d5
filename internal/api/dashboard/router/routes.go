// Package router đăng ký route cho domain dashboard.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	dashboardhdl "phone_commerce/internal/api/dashboard/handler"
	"phone_commerce/internal/api/middleware"
	apirouter "phone_commerce/internal/api/router"
)

// Register đăng ký các route /dashboard lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := dashboardhdl.NewDashboardHandler()
	if err != nil {
		return fmt.Errorf("failed to create dashboard handler: %w", err)
	}

	shopContext := middleware.ShopContext()
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/sale-dashboard", []fiber.Handler{shopContext}, handler.HandleSaleDashboard)
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "POST", "/statement", []fiber.Handler{shopContext}, handler.HandleStatement)
	return nil
}

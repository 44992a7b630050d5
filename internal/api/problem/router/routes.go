// Package router đăng ký route cho domain problem.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	problemhdl "phone_commerce/internal/api/problem/handler"
	apirouter "phone_commerce/internal/api/router"
)

// Register đăng ký các route /problem lên v1.
// Danh mục dùng chung nên không có get-all-by-shop.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := problemhdl.NewProblemHandler()
	if err != nil {
		return fmt.Errorf("failed to create problem handler: %w", err)
	}
	r.RegisterResourceRoutes(v1, "/problem", handler, apirouter.GlobalConfig)
	return nil
}

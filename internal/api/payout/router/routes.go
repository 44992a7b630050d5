// Package router đăng ký route cho domain payout.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	payouthdl "phone_commerce/internal/api/payout/handler"
	apirouter "phone_commerce/internal/api/router"
)

// Register đăng ký các route /payout lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := payouthdl.NewPayoutHandler()
	if err != nil {
		return fmt.Errorf("failed to create payout handler: %w", err)
	}
	r.RegisterResourceRoutes(v1, "/payout", handler, apirouter.DefaultConfig)
	return nil
}

// Package router đăng ký route cho domain transactions.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "phone_commerce/internal/api/router"
	transactionshdl "phone_commerce/internal/api/transactions/handler"
)

// Register đăng ký các route /transactions lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := transactionshdl.NewTransactionHandler()
	if err != nil {
		return fmt.Errorf("failed to create transaction handler: %w", err)
	}
	r.RegisterResourceRoutes(v1, "/transactions", handler, apirouter.DefaultConfig)
	return nil
}

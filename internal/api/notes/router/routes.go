// Package router đăng ký route cho domain notes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	noteshdl "phone_commerce/internal/api/notes/handler"
	apirouter "phone_commerce/internal/api/router"
)

// Register đăng ký các route /notes lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := noteshdl.NewNoteHandler()
	if err != nil {
		return fmt.Errorf("failed to create note handler: %w", err)
	}
	r.RegisterResourceRoutes(v1, "/notes", handler, apirouter.DefaultConfig)
	return nil
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/haseebajmal/finapp/internal/account"
)

// RegisterAccountRoutes wires account endpoints.
func RegisterAccountRoutes(r fiber.Router, h *account.Handler) {
	r.Post("/accounts", h.Create)
	r.Get("/accounts/:id", h.Get)
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/haseebajmal/finapp/internal/transfer"
)

// RegisterTransferRoutes wires the balance move endpoint.
func RegisterTransferRoutes(r fiber.Router, h *transfer.Handler) {
	r.Post("/transfers", h.Move)
}

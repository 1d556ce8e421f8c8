package transfer

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/haseebajmal/finapp/internal/errs"
)

// Handler exposes the balance move endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a transfer handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type moveRequest struct {
	FromAccountID string `json:"from_account_id"`
	ToAccountID   string `json:"to_account_id"`
	Amount        string `json:"amount"`
}

// Move debits the source account and credits the destination atomically.
func (h *Handler) Move(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	fromID, err := uuid.Parse(req.FromAccountID)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid from_account_id")
	}
	toID, err := uuid.Parse(req.ToAccountID)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid to_account_id")
	}

	res, err := h.service.MoveBalance(c.UserContext(), fromID, toID, req.Amount)
	if err != nil {
		return fiber.NewError(errs.HTTPStatus(err), err.Error())
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"from_balance": res.FromBalance.String(),
		"to_balance":   res.ToBalance.String(),
	})
}

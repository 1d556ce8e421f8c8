package account

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/haseebajmal/finapp/internal/errs"
)

// Handler exposes account endpoints.
type Handler struct {
	factory *Factory
	repo    Repository
}

// NewHandler constructs an account handler.
func NewHandler(factory *Factory, repo Repository) *Handler {
	return &Handler{factory: factory, repo: repo}
}

type createRequest struct {
	Type    string `json:"type"`
	Status  string `json:"status"`
	Balance string `json:"balance"`
}

// Create provisions a new account with an initial balance.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	acct, err := h.factory.Create(c.UserContext(), CreateInput{
		Type:    req.Type,
		Status:  req.Status,
		Balance: req.Balance,
	})
	if err != nil {
		return fiber.NewError(errs.HTTPStatus(err), err.Error())
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"account_id": acct.ID.String(),
	})
}

// Get returns the stored account record, balance included.
func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid account id")
	}

	acct, err := h.repo.Get(c.UserContext(), id)
	if err != nil {
		return fiber.NewError(errs.HTTPStatus(err), err.Error())
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"account_id": acct.ID.String(),
		"type":       acct.Type.String(),
		"status":     acct.Status.String(),
		"balance":    acct.Balance.String(),
		"created_at": acct.CreatedAt,
	})
}

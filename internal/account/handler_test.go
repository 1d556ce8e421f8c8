package account

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func setupAccountApp(t *testing.T) *fiber.App {
	t.Helper()
	repo := NewInMemory()
	handler := NewHandler(NewFactory(repo), repo)
	app := fiber.New()
	app.Post("/accounts", handler.Create)
	app.Get("/accounts/:id", handler.Get)
	return app
}

func TestCreateEndpointThenReadBack(t *testing.T) {
	app := setupAccountApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/accounts",
		strings.NewReader(`{"type":"CHECKING","status":"ACTIVE","balance":"100"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	var created struct {
		AccountID string `json:"account_id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	getReq := httptest.NewRequest(fiber.MethodGet, "/accounts/"+created.AccountID, nil)
	getResp, err := app.Test(getReq)
	if err != nil {
		t.Fatalf("get request: %v", err)
	}
	if getResp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", getResp.StatusCode)
	}
	getBody, _ := io.ReadAll(getResp.Body)
	getResp.Body.Close()

	var fetched map[string]any
	if err := json.Unmarshal(getBody, &fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched["balance"] != "100" || fetched["type"] != "CHECKING" || fetched["status"] != "ACTIVE" {
		t.Fatalf("unexpected account payload: %v", fetched)
	}
}

func TestCreateEndpointRejectsNegativeBalance(t *testing.T) {
	app := setupAccountApp(t)

	req := httptest.NewRequest(fiber.MethodPost, "/accounts",
		strings.NewReader(`{"type":"CHECKING","status":"ACTIVE","balance":"-100"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

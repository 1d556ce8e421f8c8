package transfer

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/haseebajmal/finapp/internal/account"
)

func setupHandlerTest(t *testing.T) (*fiber.App, account.Repository) {
	t.Helper()
	repo := account.NewInMemory()
	svc := NewService(repo, Policy{Attempts: 3, Backoff: time.Millisecond, RequireActive: true}, nil)
	app := fiber.New()
	app.Post("/transfers", NewHandler(svc).Move)
	return app, repo
}

func postMove(t *testing.T, app *fiber.App, from, to, amount string) (int, map[string]any) {
	t.Helper()
	payload := fmt.Sprintf(`{"from_account_id":%q,"to_account_id":%q,"amount":%q}`, from, to, amount)
	req := httptest.NewRequest(fiber.MethodPost, "/transfers", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	var decoded map[string]any
	_ = json.Unmarshal(body, &decoded)
	return resp.StatusCode, decoded
}

func TestMoveEndpointSuccess(t *testing.T) {
	app, repo := setupHandlerTest(t)

	from := createAccount(t, repo, "100", account.StatusActive)
	to := createAccount(t, repo, "50", account.StatusActive)

	status, body := postMove(t, app, from.ID.String(), to.ID.String(), "10")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["from_balance"] != "90" || body["to_balance"] != "60" {
		t.Fatalf("unexpected balances in response: %v", body)
	}
}

func TestMoveEndpointRejectsBadIDs(t *testing.T) {
	app, _ := setupHandlerTest(t)

	status, _ := postMove(t, app, "not-a-uuid", uuid.NewString(), "10")
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestMoveEndpointMissingAccount(t *testing.T) {
	app, repo := setupHandlerTest(t)

	from := createAccount(t, repo, "100", account.StatusActive)

	status, _ := postMove(t, app, from.ID.String(), uuid.NewString(), "10")
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
}

func TestMoveEndpointOverdraft(t *testing.T) {
	app, repo := setupHandlerTest(t)

	from := createAccount(t, repo, "100", account.StatusActive)
	to := createAccount(t, repo, "100", account.StatusActive)

	status, _ := postMove(t, app, from.ID.String(), to.ID.String(), "200")
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

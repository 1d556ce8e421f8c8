package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/haseebajmal/finapp/internal/account"
	"github.com/haseebajmal/finapp/internal/config"
	"github.com/haseebajmal/finapp/internal/middleware"
	"github.com/haseebajmal/finapp/internal/notification"
	"github.com/haseebajmal/finapp/internal/transfer"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.Env)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.Env)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
		app.Use(middleware.RateLimit(d.Cache, 60))
	}

	// Health
	RegisterHealthRoutes(app, d)

	// Services and handlers. Dev mode without a database falls back to the
	// in-memory repository.
	var repo account.Repository
	if d.DB != nil {
		repo = account.NewPostgresRepository(d.DB)
	} else {
		repo = account.NewInMemory()
	}

	factory := account.NewFactory(repo)
	notifier := notification.NewLoggerNotifier(d.Logger)
	transferSvc := transfer.NewService(repo, transfer.Policy{
		Attempts:      d.Cfg.TransferAttempts,
		Backoff:       d.Cfg.TransferBackoff,
		RequireActive: d.Cfg.TransferRequireActive,
	}, notifier)

	accountHandler := account.NewHandler(factory, repo)
	transferHandler := transfer.NewHandler(transferSvc)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterAccountRoutes(api, accountHandler)
	RegisterTransferRoutes(api, transferHandler)

	return nil
}

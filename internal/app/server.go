package app

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bankroll/internal/account"
	"bankroll/internal/admin"
	"bankroll/internal/audit"
	"bankroll/internal/auth"
	"bankroll/internal/casino"
	"bankroll/internal/config"
	"bankroll/internal/event"
	"bankroll/internal/jobs"
	"bankroll/internal/ledger"
	"bankroll/internal/logger"
	"bankroll/internal/monitoring"
	"bankroll/internal/savings"
	"bankroll/internal/session"
	"bankroll/internal/storage"
	"bankroll/internal/wallet"
)

type Server struct {
	app  *fiber.App
	cfg  *config.Config
	jobs *jobs.Manager
}

func NewServer() (*Server, error) {
	cfg := config.Load()
	logger.Init()
	monitoring.Init()

	database, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	store := storage.New(database)

	repo := account.NewRepo()
	accounts, next, err := store.LoadAll()
	if err != nil {
		return nil, err
	}
	repo.Restore(accounts, next)
	logger.Log.Info("accounts loaded", zap.Int("count", len(accounts)))

	bus := event.NewBus()
	ledgerService := ledger.New(repo, bus)
	savingsService := savings.New(repo)
	auditService := audit.New(database)
	sessions := session.New(cfg.RedisAddr)
	authService := auth.New(repo, sessions, bus)
	casinoService := casino.New(ledgerService, bus)

	casino.RegisterConsumers(bus, auditService)
	bus.Subscribe(event.EventTransferCompleted, func(payload any) {
		if t, ok := payload.(ledger.TransferCompleted); ok {
			auditService.Log(t.From, "transfer", t.Amount.String())
		}
	})
	bus.Subscribe(event.EventAccountCreated, func(payload any) {
		if number, ok := payload.(int64); ok {
			auditService.Log(number, "account_created", "")
		}
	})

	manager := jobs.New()
	manager.Register(&jobs.Flusher{Repo: repo, Store: store, Log: logger.Log})
	manager.Register(casinoService.Seeds())

	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	auth.RegisterRoutes(app, authService)

	api := app.Group("/api", auth.SessionGuard(sessions))
	wallet.RegisterRoutes(api, ledgerService)
	savings.RegisterRoutes(api, savingsService)
	casino.RegisterRoutes(api, casinoService)

	adminGroup := app.Group("/admin", auth.AdminGuard(cfg.AdminToken))
	admin.RegisterRoutes(adminGroup, repo)

	return &Server{app: app, cfg: cfg, jobs: manager}, nil
}

// Start serves until ctx is cancelled, then shuts the listener down and
// waits for the jobs manager so the final persistence flush runs.
func (s *Server) Start(ctx context.Context) error {
	jobsDone := make(chan struct{})
	go func() {
		s.jobs.Start(ctx)
		close(jobsDone)
	}()

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- s.app.Listen(":" + s.cfg.Port)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
		err := s.app.Shutdown()
		<-jobsDone
		return err
	}
}

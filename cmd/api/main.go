package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/gift-exchange-service/internal/api/http"
	"github.com/spec-kit/gift-exchange-service/internal/api/http/handlers"
	"github.com/spec-kit/gift-exchange-service/internal/auth"
	"github.com/spec-kit/gift-exchange-service/internal/config"
	"github.com/spec-kit/gift-exchange-service/internal/events"
	"github.com/spec-kit/gift-exchange-service/internal/observability"
	"github.com/spec-kit/gift-exchange-service/internal/registry"
	"github.com/spec-kit/gift-exchange-service/internal/service"
	"github.com/spec-kit/gift-exchange-service/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open snapshot store", zap.Error(err))
	}
	defer st.Close() //nolint:errcheck

	dispatcher := events.NewInMemoryDispatcher()
	notifications := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	notifications.RegisterHandlers()

	reg, err := registry.New(ctx, registry.Dependencies{
		Store:      st,
		Logger:     logger,
		Dispatcher: dispatcher,
	})
	if err != nil {
		logger.Fatal("failed to load registry", zap.Error(err))
	}

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, st),
		Pages:        handlers.NewPagesHandler(cfg.Web.IndexFile),
		Participants: handlers.NewParticipantsHandler(reg),
		Draw:         handlers.NewDrawHandler(reg),
		Assignment:   handlers.NewAssignmentHandler(reg),
		Organizer:    auth.NewGuard(cfg.Auth),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

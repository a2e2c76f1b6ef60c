package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gift-exchange-service/internal/api/http/handlers"
	"github.com/spec-kit/gift-exchange-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Pages        *handlers.PagesHandler
	Participants *handlers.ParticipantsHandler
	Draw         *handlers.DrawHandler
	Assignment   *handlers.AssignmentHandler
	Organizer    *auth.Guard
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/", cfg.Pages.Index)
	app.Get("/my-assignment/:id", cfg.Pages.Index)

	app.Post("/participants", cfg.Participants.Join)
	app.Get("/participants", cfg.Organizer.Handle, cfg.Participants.List)
	app.Delete("/participants/:id", cfg.Organizer.Handle, cfg.Participants.Remove)

	app.Post("/shuffle", cfg.Organizer.Handle, cfg.Draw.Trigger)
	app.Get("/assignment/:id", cfg.Assignment.Get)
}

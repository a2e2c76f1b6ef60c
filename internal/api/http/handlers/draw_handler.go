package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gift-exchange-service/internal/api/dto"
	"github.com/spec-kit/gift-exchange-service/internal/registry"
)

// DrawHandler triggers the one-time assignment draw.
type DrawHandler struct {
	registry *registry.Registry
}

// NewDrawHandler constructs handler.
func NewDrawHandler(reg *registry.Registry) *DrawHandler {
	return &DrawHandler{registry: reg}
}

// Trigger handles POST /shuffle. Organizer only; the pairing list in the
// response is the single place receivers are exposed in bulk.
func (h *DrawHandler) Trigger(c *fiber.Ctx) error {
	pairings, err := h.registry.Draw(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.DrawResponse{
		Message:     "Assignments are ready!",
		Assignments: pairings,
	})
}

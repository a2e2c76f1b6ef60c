package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gift-exchange-service/internal/api/dto"
	"github.com/spec-kit/gift-exchange-service/internal/registry"
	apperrors "github.com/spec-kit/gift-exchange-service/pkg/util/errorutil"
)

// ParticipantsHandler exposes participant membership endpoints.
type ParticipantsHandler struct {
	registry *registry.Registry
}

// NewParticipantsHandler constructs handler.
func NewParticipantsHandler(reg *registry.Registry) *ParticipantsHandler {
	return &ParticipantsHandler{registry: reg}
}

// Join handles POST /participants.
func (h *ParticipantsHandler) Join(c *fiber.Ctx) error {
	var req dto.JoinRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	preference := ""
	if req.GiftPreference != nil {
		preference = *req.GiftPreference
	}

	participant, err := h.registry.Join(c.UserContext(), req.Name, preference)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.JoinResponse{
		ID:             participant.ID,
		Message:        "You joined the gift exchange!",
		AssignmentLink: "/my-assignment/" + participant.ID,
	})
}

// List handles GET /participants. Organizer only; includes assignment state.
func (h *ParticipantsHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.registry.List())
}

// Remove handles DELETE /participants/:id. Organizer only.
func (h *ParticipantsHandler) Remove(c *fiber.Ctx) error {
	if err := h.registry.Remove(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Participant removed."})
}

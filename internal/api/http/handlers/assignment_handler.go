package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gift-exchange-service/internal/api/dto"
	"github.com/spec-kit/gift-exchange-service/internal/registry"
)

// AssignmentHandler lets a participant look up who they are giving to.
type AssignmentHandler struct {
	registry *registry.Registry
}

// NewAssignmentHandler constructs handler.
func NewAssignmentHandler(reg *registry.Registry) *AssignmentHandler {
	return &AssignmentHandler{registry: reg}
}

// Get handles GET /assignment/:id.
func (h *AssignmentHandler) Get(c *fiber.Ctx) error {
	recipient, err := h.registry.Assignment(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.AssignmentResponse{YouAreGivingTo: recipient})
}

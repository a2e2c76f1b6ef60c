package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/gift-exchange-service/pkg/util/errorutil"
)

// PagesHandler serves the static frontend. Assignment deep links land on the
// same page; the client reads the identity from the path.
type PagesHandler struct {
	indexFile string
}

// NewPagesHandler constructs handler.
func NewPagesHandler(indexFile string) *PagesHandler {
	return &PagesHandler{indexFile: indexFile}
}

// Index handles GET / and GET /my-assignment/:id.
func (h *PagesHandler) Index(c *fiber.Ctx) error {
	if _, err := os.Stat(h.indexFile); err != nil {
		return apperrors.NewNotFound("frontend", nil)
	}
	return c.SendFile(h.indexFile)
}

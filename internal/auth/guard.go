package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gift-exchange-service/internal/config"
	apperrors "github.com/spec-kit/gift-exchange-service/pkg/util/errorutil"
)

const secretHeader = "X-Organizer-Secret"

// Guard checks the organizer shared secret on privileged routes. When a
// bcrypt hash is configured it takes precedence over the plaintext secret.
type Guard struct {
	secret     string
	secretHash string
}

// NewGuard builds the guard from configuration.
func NewGuard(cfg config.AuthConfig) *Guard {
	return &Guard{secret: cfg.AdminSecret, secretHash: cfg.AdminSecretHash}
}

// Handle is a fiber middleware rejecting requests without a valid secret.
// The secret travels in the "secret" query parameter or the
// X-Organizer-Secret header.
func (g *Guard) Handle(c *fiber.Ctx) error {
	provided := c.Query("secret")
	if provided == "" {
		provided = c.Get(secretHeader)
	}
	if err := g.Verify(provided); err != nil {
		return err
	}
	return c.Next()
}

// Verify compares the provided secret against the configured credential.
func (g *Guard) Verify(provided string) error {
	if g.secretHash != "" {
		if err := CompareSecret(g.secretHash, provided); err != nil {
			return apperrors.NewForbidden("invalid organizer secret")
		}
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(provided), []byte(g.secret)) != 1 {
		return apperrors.NewForbidden("invalid organizer secret")
	}
	return nil
}

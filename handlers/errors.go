package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"ecofinds_backend/internal/catalog"
	"ecofinds_backend/internal/identity"
)

// respondError maps the service error taxonomy to HTTP statuses. Anything
// outside the taxonomy is a provider failure: it is logged here and returned
// as a generic 500 with no internal detail.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrValidation), errors.Is(err, identity.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, identity.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, catalog.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not authorized"})
	case errors.Is(err, identity.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, identity.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	default:
		log.WithError(err).WithFields(log.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error("unexpected service error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}

// handlers/common.go
package handlers

import (
	"errors"

	"github.com/thelonewolf39/Language-Learning-web/services"

	"github.com/gofiber/fiber/v2"
)

// fail maps a domain error to its HTTP status and the standard error
// envelope. Insufficient-points failures additionally carry the price
// and the caller's balance.
func fail(c *fiber.Ctx, err error) error {
	var insufficientErr *services.InsufficientPointsError
	if errors.As(err, &insufficientErr) {
		return c.Status(400).JSON(fiber.Map{
			"success":   false,
			"error":     "Not enough points",
			"required":  insufficientErr.Required,
			"available": insufficientErr.Available,
		})
	}

	status := 500
	message := "A storage error occurred. Please try again later."

	switch {
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrUnauthenticated),
		errors.Is(err, services.ErrInvalidKey):
		status, message = 401, err.Error()
	case errors.Is(err, services.ErrNotOwned):
		status, message = 403, err.Error()
	case errors.Is(err, services.ErrNotFound):
		status, message = 404, err.Error()
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrAlreadyOwned):
		status, message = 409, err.Error()
	case errors.Is(err, services.ErrStorageUnavailable):
		// keep the generic 500 message, never leak driver detail
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

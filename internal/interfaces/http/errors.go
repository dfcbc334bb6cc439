package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/opinio-app/survey_backend/internal/domain"
)

// statusForKind is the single place error kinds become HTTP statuses.
// Clients discriminate on the kind field of the body, never on message text.
func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.ErrorInvalid:
		return fiber.StatusBadRequest
	case domain.ErrorUnauthorized:
		return fiber.StatusUnauthorized
	case domain.ErrorForbidden:
		return fiber.StatusForbidden
	case domain.ErrorNotFound:
		return fiber.StatusNotFound
	case domain.ErrorConflict:
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

// handleError writes the JSON error response for a service failure.
func handleError(c *fiber.Ctx, err error) error {
	kind := domain.KindOf(err)
	message := err.Error()
	if kind == domain.ErrorInternal {
		// Internal details stay in the logs.
		message = "internal server error"
	}
	return c.Status(statusForKind(kind)).JSON(fiber.Map{
		"error": message,
		"kind":  kind,
	})
}

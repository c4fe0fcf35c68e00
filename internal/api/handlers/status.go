package handlers

import (
	"errors"

	"recipai-backend/domain"
	"recipai-backend/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

var errInternal = errors.New("internal server error")

// statusFor picks the HTTP status for a service failure: not-found 404,
// reference/duplicate conflicts 409, storage connectivity 503, upstream
// recognition 502, everything else 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrAttachmentNotFound),
		errors.Is(err, domain.ErrImageNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrForeignKeyViolation),
		errors.Is(err, domain.ErrDuplicateResource):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrStorageUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, domain.ErrInvalidImageFormat),
		errors.Is(err, domain.ErrInvalidID):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrRecognitionFailed):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// handleError translates a service failure into an HTTP response. Raw driver
// errors are logged server-side and never echoed to clients.
func handleError(c *fiber.Ctx, message string, err error) error {
	code := statusFor(err)
	if code == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg(message)
		return presenters.ErrorResponse(c, code, message, errInternal)
	}
	return presenters.ErrorResponse(c, code, message, err)
}

// paramID parses a positional path parameter as a storage identity.
// Non-numeric or non-positive values never reach a service.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return uint(id), nil
}

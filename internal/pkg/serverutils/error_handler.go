package serverutils

import (
	"errors"

	"ai-healthassist-be/internal/pkg/apperr"
	"ai-healthassist-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// NewErrorHandler maps service errors onto HTTP status codes. Anything not
// wrapped in an apperr sentinel falls through as a 500.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error

		switch {
		case errors.Is(err, apperr.ErrNotFound):
			return ErrorResponse(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, apperr.ErrValidation):
			return ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, apperr.ErrUpstream):
			log.Error("http", "upstream failure", map[string]interface{}{
				"path":  c.Path(),
				"error": err.Error(),
			})
			return ErrorResponse(c, fiber.StatusBadGateway, "a dependency is unavailable, please retry")
		case errors.As(err, &fiberErr):
			return ErrorResponse(c, fiberErr.Code, fiberErr.Message)
		default:
			log.Error("http", "unhandled error", map[string]interface{}{
				"path":  c.Path(),
				"error": err.Error(),
			})
			return ErrorResponse(c, fiber.StatusInternalServerError, "internal server error")
		}
	}
}

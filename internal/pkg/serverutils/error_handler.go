package serverutils

import (
	"errors"

	"dinedesk-be/internal/pkg/apperror"
	"dinedesk-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by handlers into the JSON
// error envelope. Unknown errors become a generic 500 and are logged.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		status, message := classify(err)
		if status == fiber.StatusInternalServerError {
			log.Error("HTTP", "Unhandled error", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
		}
		return ctx.Status(status).JSON(ErrorResponse(status, message))
	}
}

func classify(err error) (int, string) {
	var (
		validationErr   *apperror.ValidationError
		notFoundErr     *apperror.NotFoundError
		forbiddenErr    *apperror.ForbiddenError
		unauthorizedErr *apperror.UnauthorizedError
		fiberErr        *fiber.Error
	)
	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest, validationErr.Error()
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound, notFoundErr.Error()
	case errors.As(err, &forbiddenErr):
		return fiber.StatusForbidden, forbiddenErr.Error()
	case errors.As(err, &unauthorizedErr):
		return fiber.StatusUnauthorized, unauthorizedErr.Error()
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}

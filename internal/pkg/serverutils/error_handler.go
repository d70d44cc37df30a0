package serverutils

import (
	"errors"

	"notepad-be/internal/pkg/apperror"
	"notepad-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ErrorHandlerMiddleware renders errors returned by downstream handlers.
// Internal failures are logged with a correlation id; the client only gets
// the generic message and that id.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		appErr := apperror.As(err)
		if appErr == nil {
			appErr = apperror.NewInternalError("Internal server error", err)
		}

		if appErr.Kind == apperror.KindInternal {
			if appErr.CorrelationId == "" {
				appErr.CorrelationId = uuid.NewString()
			}
			log.Error("HTTP", "request failed", map[string]interface{}{
				"method":         ctx.Method(),
				"path":           ctx.Path(),
				"correlation_id": appErr.CorrelationId,
				"error":          err,
			})
		}

		status := appErr.HTTPStatus()
		res := ErrorResponse(status, appErr.Message)
		res.ErrorKind = string(appErr.Kind)
		res.CorrelationId = appErr.CorrelationId

		return ctx.Status(status).JSON(res)
	}
}

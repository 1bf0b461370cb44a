package app

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	pkgErrors "github.com/SlavaShagalov/blog-platform/internal/pkg/errors"
)

// NewErrorHandler maps the error taxonomy to HTTP statuses and the
// {success, message} response envelope. Unclassified errors become a
// generic 500 so internals never leak to the client.
func NewErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var validationErr *pkgErrors.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "validation failed",
				"errors":  validationErr.Fields,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{
				"success": false,
				"message": fiberErr.Message,
			})
		}

		status := statusOf(err)
		if status == fiber.StatusInternalServerError {
			logger.Error("unhandled error",
				slog.String("method", ctx.Method()),
				slog.String("path", ctx.Path()),
				slog.String("error", err.Error()),
			)
			return ctx.Status(status).JSON(fiber.Map{
				"success": false,
				"message": "internal server error",
			})
		}

		return ctx.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, pkgErrors.ErrUnauthenticated),
		errors.Is(err, pkgErrors.ErrInvalidToken),
		errors.Is(err, pkgErrors.ErrUnknownUser),
		errors.Is(err, pkgErrors.ErrWrongLoginOrPassword):
		return fiber.StatusUnauthorized
	case errors.Is(err, pkgErrors.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, pkgErrors.ErrUserNotFound),
		errors.Is(err, pkgErrors.ErrPostNotFound),
		errors.Is(err, pkgErrors.ErrCommentNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, pkgErrors.ErrInvalidIdentifier),
		errors.Is(err, pkgErrors.ErrBadRequestBody):
		return fiber.StatusBadRequest
	case errors.Is(err, pkgErrors.ErrUserAlreadyExists):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

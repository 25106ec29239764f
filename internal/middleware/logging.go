package middleware

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zerotabs/backend/internal/apperr"
)

// StatusOf resolves the status a response will carry. Middleware observes
// the request before the app's error handler has run, so on a handler error
// the response still holds the default status; the error must be mapped the
// same way the error handler will map it.
func StatusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return apperr.KindOf(err).HTTPStatus()
}

// RequestLogger returns a middleware that logs every request with method,
// path, status, authenticated user (if any) and duration.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := StatusOf(c, err)
		attrs := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"user_id", GetUserID(c),
			"duration_ms", time.Since(start).Milliseconds(),
		}

		switch {
		case err != nil:
			slog.Warn("Request failed", append(attrs, "error", err)...)
		case status >= fiber.StatusInternalServerError:
			slog.Error("Request errored", attrs...)
		default:
			slog.Info("Request completed", attrs...)
		}

		return err
	}
}

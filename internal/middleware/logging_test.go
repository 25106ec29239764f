package middleware

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/zerotabs/backend/internal/apperr"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"classified not found", apperr.New(apperr.NotFound, "missing"), fiber.StatusNotFound},
		{"classified forbidden", apperr.New(apperr.Forbidden, "nope"), fiber.StatusForbidden},
		{"classified unauthorized", apperr.New(apperr.Unauthorized, "bad token"), fiber.StatusUnauthorized},
		{"fiber error", fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{"unclassified", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The ctx is only consulted when err is nil.
			if got := StatusOf(nil, tt.err); got != tt.want {
				t.Errorf("StatusOf() = %d, want %d", got, tt.want)
			}
		})
	}
}

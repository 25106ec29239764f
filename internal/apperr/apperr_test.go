package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	sentinel := errors.New("underlying")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"direct", New(NotFound, "missing"), NotFound},
		{"wrapped underlying", Wrap(Conflict, "dup", sentinel), Conflict},
		{"fmt-wrapped", fmt.Errorf("outer: %w", New(Forbidden, "nope")), Forbidden},
		{"unclassified", sentinel, Internal},
		{"nil", nil, Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := Wrap(Unauthorized, "bad token", errors.New("expired"))
	if !Is(err, Unauthorized) {
		t.Error("Is(err, Unauthorized) = false, want true")
	}
	if Is(err, NotFound) {
		t.Error("Is(err, NotFound) = true, want false")
	}
	if Is(errors.New("plain"), Internal) {
		t.Error("Is(plain error, Internal) = true, want false")
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{NotFound, http.StatusNotFound},
		{Conflict, http.StatusConflict},
		{Forbidden, http.StatusForbidden},
		{Unauthorized, http.StatusUnauthorized},
		{InvalidInput, http.StatusBadRequest},
		{InvalidState, http.StatusBadRequest},
		{Expired, http.StatusBadRequest},
		{Internal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.HTTPStatus(); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("io failure")
	err := Wrap(Internal, "persist failed", inner)
	if !errors.Is(err, inner) {
		t.Error("errors.Is does not reach the wrapped error")
	}
	if got := err.Error(); got != "persist failed: io failure" {
		t.Errorf("Error() = %q", got)
	}
	if got := New(Expired, "otp expired").Error(); got != "otp expired" {
		t.Errorf("Error() = %q", got)
	}
}

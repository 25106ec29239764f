// Package notify delivers outbound messages (OTP emails).
//
// Delivery is best-effort: callers log failures and never propagate them,
// so a broken mail relay cannot fail a signup or password-reset request.
package notify

import "context"

// Notifier sends a message to a destination address.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Noop discards every message. Used in tests and when SMTP is unconfigured.
type Noop struct{}

// NewNoop creates a notifier that does nothing.
func NewNoop() *Noop { return &Noop{} }

// Send implements Notifier.
func (*Noop) Send(ctx context.Context, to, subject, body string) error {
	return nil
}

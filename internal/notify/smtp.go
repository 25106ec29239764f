package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/zerotabs/backend/internal/config"
)

// Ensure SMTPNotifier implements Notifier
var _ Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier delivers messages over SMTP with STARTTLS.
type SMTPNotifier struct {
	client *mail.Client
	from   string
}

// NewSMTP creates an SMTP notifier from config.
func NewSMTP(cfg config.SMTPSection) (*SMTPNotifier, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return &SMTPNotifier{client: client, from: cfg.From}, nil
}

// Send delivers a single HTML message.
func (n *SMTPNotifier) Send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

// Package mailer sends the completion notification over SMTP. Delivery here
// is best-effort; the gateway logs and swallows failures.
package mailer

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/goliatone/go-briefwizard/pkg/delivery"
)

// Config holds the SMTP endpoint, sender and recipients.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

// Notifier implements delivery.Notifier over SMTP.
type Notifier struct {
	dialer *gomail.Dialer
	from   string
	to     []string
}

// NewNotifier validates the config and prepares the dialer. No connection
// is made until the first send.
func NewNotifier(cfg Config) (*Notifier, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("mailer: smtp host is required")
	}
	if len(cfg.To) == 0 {
		return nil, fmt.Errorf("mailer: at least one recipient is required")
	}
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	if from == "" {
		return nil, fmt.Errorf("mailer: sender address is required")
	}
	port := cfg.Port
	if port == 0 {
		port = 587
	}
	return &Notifier{
		dialer: gomail.NewDialer(cfg.Host, port, cfg.Username, cfg.Password),
		from:   from,
		to:     cfg.To,
	}, nil
}

// Notify sends the message with a plain-text body and an HTML alternative.
// The send itself is synchronous; the context guards the wait.
func (n *Notifier) Notify(ctx context.Context, msg delivery.Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	done := make(chan error, 1)
	go func() { done <- n.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mailer: send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mailer: send: %w", ctx.Err())
	}
}

// Package delivery fans a completed brief out to its two sinks: the tabular
// store that acts as system of record, and the notification channel that
// alerts the team. The tabular sink is fatal on failure; the notification is
// best-effort.
package delivery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/goliatone/go-briefwizard/pkg/brief"
	"github.com/goliatone/go-briefwizard/pkg/i18n"
	"github.com/goliatone/go-briefwizard/pkg/projection"
)

// Channel names a delivery sink in errors and logs.
type Channel string

const (
	ChannelTabular      Channel = "tabular"
	ChannelNotification Channel = "notification"
)

// Error wraps a sink failure with the channel it came from.
type Error struct {
	Channel Channel
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("delivery: %s sink: %v", e.Channel, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// RowAppender appends one flattened row to the tabular store.
type RowAppender interface {
	AppendRow(ctx context.Context, row []string) error
}

// Message is a rendered notification ready for any mail-shaped transport.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

// Notifier sends the completion notification.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// Gateway coordinates the two sinks with their different failure policies.
type Gateway struct {
	appender RowAppender
	notifier Notifier
	logger   *slog.Logger
	locale   i18n.Locale

	timeout  time.Duration
	attempts int
	backoff  time.Duration
	now      func() time.Time
	sleep    func(time.Duration)
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithLogger routes sink outcomes through the given logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithLocale sets the locale used when rendering the notification document.
func WithLocale(locale i18n.Locale) Option {
	return func(g *Gateway) { g.locale = locale }
}

// WithTimeout bounds each sink call. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(g *Gateway) { g.timeout = timeout }
}

// WithRetry sets the attempt count and initial backoff for the tabular sink.
// The backoff doubles after every failed attempt.
func WithRetry(attempts int, backoff time.Duration) Option {
	return func(g *Gateway) {
		if attempts > 0 {
			g.attempts = attempts
		}
		g.backoff = backoff
	}
}

// WithClock overrides the timestamp source. Tests use this.
func WithClock(now func() time.Time) Option {
	return func(g *Gateway) {
		if now != nil {
			g.now = now
		}
	}
}

func withSleep(sleep func(time.Duration)) Option {
	return func(g *Gateway) { g.sleep = sleep }
}

// NewGateway wires the two sinks. A nil notifier disables the notification
// channel entirely; the appender is mandatory.
func NewGateway(appender RowAppender, notifier Notifier, options ...Option) (*Gateway, error) {
	if appender == nil {
		return nil, fmt.Errorf("delivery: row appender is required")
	}
	g := &Gateway{
		appender: appender,
		notifier: notifier,
		logger:   slog.Default(),
		locale:   i18n.DefaultLocale,
		timeout:  15 * time.Second,
		attempts: 3,
		backoff:  500 * time.Millisecond,
		now:      time.Now,
		sleep:    time.Sleep,
	}
	for _, opt := range options {
		if opt != nil {
			opt(g)
		}
	}
	return g, nil
}

// Deliver sends the brief to both sinks. A tabular failure aborts with a
// *Error and nothing is considered delivered; a notification failure is
// logged and swallowed. The returned error is nil exactly when the system of
// record accepted the row.
func (g *Gateway) Deliver(ctx context.Context, b brief.Brief) error {
	at := g.now()

	if err := g.appendWithRetry(ctx, projection.Row(b, at)); err != nil {
		return &Error{Channel: ChannelTabular, Err: err}
	}
	g.logger.Info("brief delivered to tabular store", "brief_id", b.ID)

	if g.notifier == nil {
		return nil
	}
	doc, err := projection.RenderDocument(b, g.locale, at)
	if err != nil {
		g.logger.Warn("notification skipped", "brief_id", b.ID, "error", err)
		return nil
	}
	msg := Message{
		Subject: projection.NotificationSubject(b),
		HTML:    doc.HTML,
		Text:    doc.Text,
	}
	if err := g.notify(ctx, msg); err != nil {
		g.logger.Warn("notification failed", "brief_id", b.ID, "error", err)
		return nil
	}
	g.logger.Info("notification sent", "brief_id", b.ID)
	return nil
}

func (g *Gateway) appendWithRetry(ctx context.Context, row []string) error {
	backoff := g.backoff
	var last error
	for attempt := 1; attempt <= g.attempts; attempt++ {
		last = g.withDeadline(ctx, func(ctx context.Context) error {
			return g.appender.AppendRow(ctx, row)
		})
		if last == nil {
			return nil
		}
		if ctx.Err() != nil {
			return last
		}
		if attempt < g.attempts {
			g.logger.Warn("tabular append failed, retrying",
				"attempt", attempt, "backoff", backoff, "error", last)
			g.sleep(backoff)
			backoff *= 2
		}
	}
	return fmt.Errorf("after %d attempt(s): %w", g.attempts, last)
}

func (g *Gateway) notify(ctx context.Context, msg Message) error {
	err := g.withDeadline(ctx, func(ctx context.Context) error {
		return g.notifier.Notify(ctx, msg)
	})
	if err != nil {
		return &Error{Channel: ChannelNotification, Err: err}
	}
	return nil
}

func (g *Gateway) withDeadline(ctx context.Context, fn func(context.Context) error) error {
	if g.timeout <= 0 {
		return fn(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return fn(ctx)
}

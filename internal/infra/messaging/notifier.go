package messaging

import (
	"context"
	"log/slog"
	"time"

	"session-ledger/internal/usecase/commands"
)

type JSONPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Notifier publishes booking notifications keyed by their template name.
type Notifier struct {
	publisher JSONPublisher
	timeout   time.Duration
}

func NewNotifier(publisher JSONPublisher, timeout time.Duration) *Notifier {
	return &Notifier{publisher: publisher, timeout: timeout}
}

func (n *Notifier) Notify(ctx context.Context, msg commands.Notification) error {
	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}
	return n.publisher.PublishJSON(ctx, string(msg.Template), msg)
}

// LogNotifier stands in when messaging is disabled.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) Notify(_ context.Context, msg commands.Notification) error {
	slog.Info("notification",
		"template", string(msg.Template),
		"booking_id", msg.BookingID.String(),
		"client_id", msg.ClientID.String())
	return nil
}

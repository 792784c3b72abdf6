package commands

import (
	"context"
	"log/slog"
	"time"

	"session-ledger/internal/pkg/metrics"

	"github.com/google/uuid"
)

// Outbound collaborators. Their failures never fail a ledger operation.

type RoomProvisioner interface {
	// Provision returns the room identifier handed out by the video provider.
	Provision(ctx context.Context, bookingID uuid.UUID) (string, error)
}

type NotificationTemplate string

const (
	TemplateBookingConfirmed NotificationTemplate = "booking.confirmed"
	TemplateBookingCancelled NotificationTemplate = "booking.cancelled"
)

type Notification struct {
	Template       NotificationTemplate `json:"template"`
	BookingID      uuid.UUID            `json:"bookingId"`
	CancellationID *uuid.UUID           `json:"cancellationId,omitempty"`
	ClientID       uuid.UUID            `json:"clientId"`
	OccurredAt     time.Time            `json:"occurredAt"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

const notifyTimeout = 5 * time.Second

// dispatch sends n in the background once the ledger change is committed.
func dispatch(ctx context.Context, notifier Notifier, n Notification) {
	if notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	go func() {
		defer cancel()
		if err := notifier.Notify(ctx, n); err != nil {
			metrics.RecordCollaboratorFailure("notifier")
			slog.Warn("notification failed",
				"template", string(n.Template),
				"booking_id", n.BookingID.String(),
				"error", err.Error())
		}
	}()
}

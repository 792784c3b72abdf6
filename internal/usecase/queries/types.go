package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GrantView is one ledger line as shown on the client dashboard.
type GrantView struct {
	ID                    uuid.UUID       `json:"id"`
	SessionTypeID         *uuid.UUID      `json:"session_type_id,omitempty"`
	InitialCredits        int             `json:"initial_credits"`
	CreditsRemaining      int             `json:"credits_remaining"`
	UnitPrice             decimal.Decimal `json:"unit_price"`
	Currency              string          `json:"currency"`
	SourceKind            string          `json:"source_kind"`
	SourceReference       string          `json:"source_reference"`
	PurchasedAt           time.Time       `json:"purchased_at"`
	ExpiresAt             *time.Time      `json:"expires_at,omitempty"`
	GraceCancellationUsed bool            `json:"grace_cancellation_used"`
	Redeemable            bool            `json:"redeemable"`
}

type BalanceView struct {
	ClientID               uuid.UUID    `json:"client_id"`
	Grants                 []*GrantView `json:"grants"`
	TotalRemaining         int          `json:"total_remaining"`
	RedeemableRemaining    int          `json:"redeemable_remaining"`
	GraceCancellationsUsed int          `json:"grace_cancellations_used"`
	HasUsedGrace           bool         `json:"has_used_grace"`
}

type CancellationSummary struct {
	Type           string          `json:"type"`
	CancelledAt    time.Time       `json:"cancelled_at"`
	FeeCharged     decimal.Decimal `json:"fee_charged"`
	CreditReturned decimal.Decimal `json:"credit_returned"`
	Currency       string          `json:"currency"`
}

type BookingView struct {
	ID               uuid.UUID            `json:"id"`
	ClientID         uuid.UUID            `json:"client_id"`
	PractitionerID   uuid.UUID            `json:"practitioner_id"`
	PractitionerName string               `json:"practitioner_name"`
	ScheduledAt      time.Time            `json:"scheduled_at"`
	DurationMinutes  int32                `json:"duration_minutes"`
	Status           string               `json:"status"`
	PolicyVersion    *int32               `json:"policy_version,omitempty"`
	SessionTypeID    *uuid.UUID           `json:"session_type_id,omitempty"`
	CreditGrantID    uuid.UUID            `json:"credit_grant_id"`
	RoomName         string               `json:"room_name"`
	Cancellation     *CancellationSummary `json:"cancellation,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

type PolicyView struct {
	Version                   int32                      `json:"version"`
	StandardCancellationHours int32                      `json:"standard_cancellation_hours"`
	LateCancellationHours     int32                      `json:"late_cancellation_hours"`
	LateFees                  map[string]decimal.Decimal `json:"late_fees"`
	GraceCancellationsAllowed int32                      `json:"grace_cancellations_allowed"`
	IsActive                  bool                       `json:"is_active"`
	Text                      string                     `json:"text"`
	CreatedAt                 time.Time                  `json:"created_at"`
}

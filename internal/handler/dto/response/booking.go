package response

import (
	"time"

	"session-ledger/internal/usecase/commands"
	"session-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type BookingCreatedResponse struct {
	BookingID             string    `json:"booking_id"`
	Status                string    `json:"status"`
	ScheduledAt           time.Time `json:"scheduled_at"`
	DurationMinutes       int       `json:"duration_minutes"`
	CreditGrantID         string    `json:"credit_grant_id"`
	RoomName              string    `json:"room_name"`
	PolicyVersion         *int32    `json:"policy_version,omitempty"`
	CreditsRemainingAfter int       `json:"credits_remaining_after"`
}

func FromBookResult(r *commands.BookResult) *BookingCreatedResponse {
	b := r.Booking
	return &BookingCreatedResponse{
		BookingID:             b.ID().String(),
		Status:                b.Status().String(),
		ScheduledAt:           b.ScheduledAt(),
		DurationMinutes:       b.DurationMinutes(),
		CreditGrantID:         b.CreditGrantID().String(),
		RoomName:              b.RoomName(),
		PolicyVersion:         b.PolicyVersion(),
		CreditsRemainingAfter: r.CreditsRemainingAfter,
	}
}

type CancellationResponse struct {
	CancellationID      string          `json:"cancellation_id"`
	BookingID           string          `json:"booking_id"`
	CancellationType    string          `json:"cancellation_type"`
	HoursBeforeStart    float64         `json:"hours_before_start"`
	FeeCharged          decimal.Decimal `json:"fee_charged"`
	CreditReturned      decimal.Decimal `json:"credit_returned"`
	CreditUnitsReturned int             `json:"credit_units_returned"`
	Currency            string          `json:"currency"`
	ReturnedGrantID     *uuid.UUID      `json:"returned_grant_id,omitempty"`
	GraceRejected       bool            `json:"grace_rejected"`
	PolicyVersion       int32           `json:"policy_version"`
}

func FromCancelResult(r *commands.CancelResult) *CancellationResponse {
	return &CancellationResponse{
		CancellationID:      r.RecordID.String(),
		BookingID:           r.BookingID.String(),
		CancellationType:    r.Type.String(),
		HoursBeforeStart:    r.HoursBeforeStart,
		FeeCharged:          r.FeeCharged,
		CreditReturned:      r.CreditReturned,
		CreditUnitsReturned: r.CreditUnitsReturned,
		Currency:            r.Currency,
		ReturnedGrantID:     r.ReturnedGrantID,
		GraceRejected:       r.GraceRejected,
		PolicyVersion:       r.PolicyVersion,
	}
}

type CancellationSummaryResponse struct {
	Type           string          `json:"type"`
	CancelledAt    time.Time       `json:"cancelled_at"`
	FeeCharged     decimal.Decimal `json:"fee_charged"`
	CreditReturned decimal.Decimal `json:"credit_returned"`
	Currency       string          `json:"currency"`
}

type BookingResponse struct {
	ID               uuid.UUID                    `json:"id"`
	ClientID         uuid.UUID                    `json:"client_id"`
	PractitionerID   uuid.UUID                    `json:"practitioner_id"`
	PractitionerName string                       `json:"practitioner_name"`
	ScheduledAt      time.Time                    `json:"scheduled_at"`
	DurationMinutes  int32                        `json:"duration_minutes"`
	Status           string                       `json:"status"`
	PolicyVersion    *int32                       `json:"policy_version,omitempty"`
	SessionTypeID    *uuid.UUID                   `json:"session_type_id,omitempty"`
	CreditGrantID    uuid.UUID                    `json:"credit_grant_id"`
	RoomName         string                       `json:"room_name"`
	Cancellation     *CancellationSummaryResponse `json:"cancellation,omitempty"`
	CreatedAt        time.Time                    `json:"created_at"`
	UpdatedAt        time.Time                    `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

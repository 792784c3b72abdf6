//go:build unit || e2e

package builder

import (
	"time"

	"session-ledger/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	PractitionerID  uuid.UUID
	ScheduledAt     time.Time
	DurationMinutes int
	Status          booking.Status
	PolicyVersion   *int32
	SessionTypeID   *uuid.UUID
	CreditGrantID   uuid.UUID
	RoomName        string
	Now             time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	version := int32(1)
	return &BookingBuilder{
		ID:              uuid.New(),
		ClientID:        uuid.New(),
		PractitionerID:  uuid.New(),
		ScheduledAt:     now.Add(48 * time.Hour),
		DurationMinutes: 60,
		Status:          booking.StatusScheduled,
		PolicyVersion:   &version,
		CreditGrantID:   uuid.New(),
		RoomName:        "room-test",
		Now:             now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithClient(id uuid.UUID) *BookingBuilder {
	b.ClientID = id
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) StartingIn(d time.Duration) *BookingBuilder {
	b.ScheduledAt = b.Now.Add(d)
	return b
}

func (b *BookingBuilder) WithGrant(id uuid.UUID) *BookingBuilder {
	b.CreditGrantID = id
	return b
}

func (b *BookingBuilder) NewParams() booking.NewParams {
	return booking.NewParams{
		ClientID:        b.ClientID,
		PractitionerID:  b.PractitionerID,
		ScheduledAt:     b.ScheduledAt,
		DurationMinutes: b.DurationMinutes,
		SessionTypeID:   b.SessionTypeID,
		CreditGrantID:   b.CreditGrantID,
		PolicyVersion:   b.PolicyVersion,
	}
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.NewParams(), b.Now)
}

func (b *BookingBuilder) BuildStored() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID, b.ClientID, b.PractitionerID,
		b.ScheduledAt, b.DurationMinutes, b.Status,
		b.PolicyVersion, b.SessionTypeID, b.CreditGrantID,
		b.RoomName, b.Now, b.Now,
	)
}

package booking

import (
	"fmt"
	"time"

	"session-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus      = errs.Kind("invalid booking status", errs.ErrInvalidArgument)
	ErrInvalidDuration    = errs.Kind("duration must be positive", errs.ErrInvalidArgument)
	ErrScheduledInPast    = errs.Kind("session must be scheduled in the future", errs.ErrInvalidArgument)
	ErrMissingParticipant = errs.Kind("client and practitioner are required", errs.ErrInvalidArgument)
	ErrNotCancellable     = errs.Kind("only scheduled bookings can be cancelled", errs.ErrInvalidState)
	ErrNotOwner           = errs.Kind("booking belongs to another client", errs.ErrForbidden)
)

type Booking struct {
	id              uuid.UUID
	clientID        uuid.UUID
	practitionerID  uuid.UUID
	scheduledAt     time.Time
	durationMinutes int
	status          Status
	policyVersion   *int32
	sessionTypeID   *uuid.UUID
	creditGrantID   uuid.UUID
	roomName        string
	createdAt       time.Time
	updatedAt       time.Time
}

type NewParams struct {
	ClientID        uuid.UUID
	PractitionerID  uuid.UUID
	ScheduledAt     time.Time
	DurationMinutes int
	SessionTypeID   *uuid.UUID
	CreditGrantID   uuid.UUID
	PolicyVersion   *int32
}

func NewBooking(p NewParams, now time.Time) (*Booking, error) {
	if p.ClientID == uuid.Nil || p.PractitionerID == uuid.Nil {
		return nil, ErrMissingParticipant
	}
	if p.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if !p.ScheduledAt.After(now) {
		return nil, ErrScheduledInPast
	}

	id := uuid.New()
	return &Booking{
		id:              id,
		clientID:        p.ClientID,
		practitionerID:  p.PractitionerID,
		scheduledAt:     p.ScheduledAt.UTC(),
		durationMinutes: p.DurationMinutes,
		status:          StatusScheduled,
		policyVersion:   p.PolicyVersion,
		sessionTypeID:   p.SessionTypeID,
		creditGrantID:   p.CreditGrantID,
		roomName:        DefaultRoomName(id),
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructBooking(
	id, clientID, practitionerID uuid.UUID,
	scheduledAt time.Time,
	durationMinutes int,
	status Status,
	policyVersion *int32,
	sessionTypeID *uuid.UUID,
	creditGrantID uuid.UUID,
	roomName string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		clientID:        clientID,
		practitionerID:  practitionerID,
		scheduledAt:     scheduledAt,
		durationMinutes: durationMinutes,
		status:          status,
		policyVersion:   policyVersion,
		sessionTypeID:   sessionTypeID,
		creditGrantID:   creditGrantID,
		roomName:        roomName,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// DefaultRoomName is the channel used when the video provider does not hand one back.
func DefaultRoomName(bookingID uuid.UUID) string {
	return fmt.Sprintf("session-%s", bookingID)
}

func (b *Booking) AssignRoom(name string) {
	if name != "" {
		b.roomName = name
	}
}

func (b *Booking) EnsureOwnedBy(clientID uuid.UUID) error {
	if b.clientID != clientID {
		return ErrNotOwner
	}
	return nil
}

// Cancel moves a scheduled booking to cancelled.
func (b *Booking) Cancel(now time.Time) error {
	if b.status != StatusScheduled {
		return ErrNotCancellable
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) ClientID() uuid.UUID       { return b.clientID }
func (b *Booking) PractitionerID() uuid.UUID { return b.practitionerID }
func (b *Booking) ScheduledAt() time.Time    { return b.scheduledAt }
func (b *Booking) DurationMinutes() int      { return b.durationMinutes }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) PolicyVersion() *int32     { return b.policyVersion }
func (b *Booking) SessionTypeID() *uuid.UUID { return b.sessionTypeID }
func (b *Booking) CreditGrantID() uuid.UUID  { return b.creditGrantID }
func (b *Booking) RoomName() string          { return b.roomName }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }

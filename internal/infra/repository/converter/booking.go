package converter

import (
	"time"

	"session-ledger/internal/domain/booking"
	"session-ledger/internal/infra/query"
	"session-ledger/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) query.CreateBookingParams {
	return query.CreateBookingParams{
		ID:                        b.ID(),
		ClientID:                  b.ClientID(),
		PractitionerID:            b.PractitionerID(),
		ScheduledAt:               b.ScheduledAt(),
		DurationMinutes:           pgconv.IntToInt32(b.DurationMinutes()),
		Status:                    b.Status().String(),
		CancellationPolicyVersion: pgconv.Int32PtrToPgtype(b.PolicyVersion()),
		SessionTypeID:             pgconv.UUIDPtrToPgtype(b.SessionTypeID()),
		CreditGrantID:             b.CreditGrantID(),
		RoomName:                  b.RoomName(),
		CreatedAt:                 b.CreatedAt(),
		UpdatedAt:                 b.UpdatedAt(),
	}
}

func BookingFromRow(row query.Booking) (*booking.Booking, error) {
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		row.ID,
		row.ClientID,
		row.PractitionerID,
		row.ScheduledAt.UTC(),
		int(row.DurationMinutes),
		status,
		pgconv.Int32PtrFromPgtype(row.CancellationPolicyVersion),
		pgconv.UUIDPtrFromPgtype(row.SessionTypeID),
		row.CreditGrantID,
		row.RoomName,
		row.CreatedAt.UTC(),
		row.UpdatedAt.UTC(),
	), nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

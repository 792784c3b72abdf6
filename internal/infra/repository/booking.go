package repository

import (
	"context"
	"time"

	"session-ledger/internal/domain/booking"
	"session-ledger/internal/infra"
	"session-ledger/internal/infra/query"
	"session-ledger/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db query.DBTX, arg query.CreateBookingParams) (query.Booking, error)
	DeleteBooking(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
	CancelScheduledBooking(ctx context.Context, db query.DBTX, arg query.CancelScheduledBookingParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      query.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db query.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if _, err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteBooking(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) CancelIfScheduled(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	n, err := r.queries.CancelScheduledBooking(ctx, r.db, query.CancelScheduledBookingParams{
		ID:        id,
		UpdatedAt: at,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel booking", err)
	}
	return n == 1, nil
}

package readstore

import (
	"context"

	"session-ledger/internal/domain/booking"
	"session-ledger/internal/infra"
	"session-ledger/internal/infra/query"
	"session-ledger/internal/infra/repository/converter"
	"session-ledger/internal/pkg/pgconv"
	"session-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBooking(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Booking, error)
	GetBookingView(ctx context.Context, db query.DBTX, id uuid.UUID) (query.GetBookingViewRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      query.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db query.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err)
	}
	return b, nil
}

func (r *BookingReadStore) FindView(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view", err)
	}

	view := &queries.BookingView{
		ID:               row.ID,
		ClientID:         row.ClientID,
		PractitionerID:   row.PractitionerID,
		PractitionerName: row.PractitionerName,
		ScheduledAt:      row.ScheduledAt.UTC(),
		DurationMinutes:  row.DurationMinutes,
		Status:           row.Status,
		PolicyVersion:    pgconv.Int32PtrFromPgtype(row.CancellationPolicyVersion),
		SessionTypeID:    pgconv.UUIDPtrFromPgtype(row.SessionTypeID),
		CreditGrantID:    row.CreditGrantID,
		RoomName:         row.RoomName,
		CreatedAt:        row.CreatedAt.UTC(),
		UpdatedAt:        row.UpdatedAt.UTC(),
	}
	if row.CancellationType.Valid {
		view.Cancellation = &queries.CancellationSummary{
			Type:           row.CancellationType.String,
			CancelledAt:    row.CancelledAt.Time.UTC(),
			FeeCharged:     pgconv.DecimalFromNumeric(row.FeeCharged),
			CreditReturned: pgconv.DecimalFromNumeric(row.CreditReturned),
			Currency:       row.CreditCurrency.String,
		}
	}
	return view, nil
}

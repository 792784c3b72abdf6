package queries

import (
	"context"

	"session-ledger/internal/domain/user"
	"session-ledger/internal/infra"
	"session-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.Kind("booking not found", errs.ErrNotFound)

type BookingReadStore interface {
	FindView(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type BookingQueries interface {
	Get(ctx context.Context, actor user.Principal, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

// Get hides bookings of other clients behind not found.
func (q *bookingQueriesImpl) Get(ctx context.Context, actor user.Principal, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindView(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithCause(ErrBookingNotFound, err)
		}
		return nil, err
	}
	if !actor.CanActFor(view.ClientID) && view.PractitionerID != actor.UserID() {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

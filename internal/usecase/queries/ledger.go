package queries

import (
	"context"

	"session-ledger/internal/domain/credit"
	"session-ledger/internal/domain/user"
	"session-ledger/internal/pkg/clock"
	"session-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrLedgerAccess = errs.Kind("ledger belongs to another client", errs.ErrForbidden)

type LedgerReadStore interface {
	GrantsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*credit.Grant, error)
	GraceCancellationsUsed(ctx context.Context, ownerID uuid.UUID) (int, error)
}

type LedgerQueries interface {
	Balances(ctx context.Context, actor user.Principal, clientID uuid.UUID) (*BalanceView, error)
}

type ledgerQueriesImpl struct {
	store LedgerReadStore
	clock clock.Clock
}

func NewLedgerQueries(store LedgerReadStore, clk clock.Clock) LedgerQueries {
	return &ledgerQueriesImpl{store: store, clock: clk}
}

func (q *ledgerQueriesImpl) Balances(ctx context.Context, actor user.Principal, clientID uuid.UUID) (*BalanceView, error) {
	if !actor.CanActFor(clientID) {
		return nil, ErrLedgerAccess
	}

	grants, err := q.store.GrantsByOwner(ctx, clientID)
	if err != nil {
		return nil, err
	}
	graceUsed, err := q.store.GraceCancellationsUsed(ctx, clientID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	view := &BalanceView{
		ClientID:               clientID,
		Grants:                 make([]*GrantView, 0, len(grants)),
		GraceCancellationsUsed: graceUsed,
		HasUsedGrace:           graceUsed > 0,
	}
	for _, g := range grants {
		gv := toGrantView(g, now)
		view.Grants = append(view.Grants, gv)
		view.TotalRemaining += g.CreditsRemaining()
		if gv.Redeemable {
			view.RedeemableRemaining += g.CreditsRemaining()
		}
	}
	return view, nil
}

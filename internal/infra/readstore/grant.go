package readstore

import (
	"context"
	"time"

	"session-ledger/internal/domain/credit"
	"session-ledger/internal/infra"
	"session-ledger/internal/infra/query"
	"session-ledger/internal/infra/repository/converter"
	"session-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type GrantViewQueries interface {
	GetGrant(ctx context.Context, db query.DBTX, id uuid.UUID) (query.CreditGrant, error)
	ListRedeemableGrants(ctx context.Context, db query.DBTX, arg query.ListRedeemableGrantsParams) ([]query.CreditGrant, error)
	ListGrantsByOwner(ctx context.Context, db query.DBTX, ownerID uuid.UUID) ([]query.CreditGrant, error)
	GetClient(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Client, error)
}

type GrantReadStore struct {
	queries GrantViewQueries
	db      query.DBTX
}

func NewGrantReadStore(queries GrantViewQueries, db query.DBTX) *GrantReadStore {
	return &GrantReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *GrantReadStore) FindByID(ctx context.Context, id uuid.UUID) (*credit.Grant, error) {
	row, err := r.queries.GetGrant(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("credit grant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get credit grant", err)
	}
	return converter.GrantFromRow(row), nil
}

// ListRedeemable returns grants with credit left and not expired at now, oldest first.
func (r *GrantReadStore) ListRedeemable(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]*credit.Grant, error) {
	rows, err := r.queries.ListRedeemableGrants(ctx, r.db, query.ListRedeemableGrantsParams{
		OwnerID: ownerID,
		Now:     now,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list redeemable grants", err)
	}
	return converter.GrantsFromRows(rows), nil
}

// GrantsByOwner includes exhausted and expired grants.
func (r *GrantReadStore) GrantsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*credit.Grant, error) {
	rows, err := r.queries.ListGrantsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list grants by owner", err)
	}
	return converter.GrantsFromRows(rows), nil
}

func (r *GrantReadStore) GraceCancellationsUsed(ctx context.Context, ownerID uuid.UUID) (int, error) {
	row, err := r.queries.GetClient(ctx, r.db, ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to get client", err)
	}
	return int(row.GraceCancellationsUsed), nil
}

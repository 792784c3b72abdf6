package repository

import (
	"context"

	"session-ledger/internal/infra"
	"session-ledger/internal/infra/query"

	"github.com/google/uuid"
)

type ClientWriteQueries interface {
	UpsertClient(ctx context.Context, db query.DBTX, id uuid.UUID) error
	ClaimGraceCancellation(ctx context.Context, db query.DBTX, arg query.ClaimGraceCancellationParams) (int64, error)
}

type ClientRepository struct {
	queries ClientWriteQueries
	db      query.DBTX
}

func NewClientRepository(queries ClientWriteQueries, db query.DBTX) *ClientRepository {
	return &ClientRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ClientRepository) Ensure(ctx context.Context, clientID uuid.UUID) error {
	if err := r.queries.UpsertClient(ctx, r.db, clientID); err != nil {
		return infra.WrapRepoErr("failed to upsert client", err)
	}
	return nil
}

func (r *ClientRepository) ClaimGrace(ctx context.Context, clientID uuid.UUID, allowed int32) (bool, error) {
	if allowed <= 0 {
		return false, nil
	}
	n, err := r.queries.ClaimGraceCancellation(ctx, r.db, query.ClaimGraceCancellationParams{
		ID:      clientID,
		Allowed: allowed,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim grace cancellation", err)
	}
	return n == 1, nil
}

package repository

import (
	"context"

	"session-ledger/internal/domain/credit"
	"session-ledger/internal/infra"
	"session-ledger/internal/infra/query"
	"session-ledger/internal/infra/repository/converter"
	"session-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type GrantWriteQueries interface {
	CreateGrant(ctx context.Context, db query.DBTX, arg query.CreateGrantParams) (query.CreditGrant, error)
	ConsumeGrantCredit(ctx context.Context, db query.DBTX, id uuid.UUID) (int32, error)
	MarkGrantGraceUsed(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type GrantRepository struct {
	queries GrantWriteQueries
	db      query.DBTX
}

func NewGrantRepository(queries GrantWriteQueries, db query.DBTX) *GrantRepository {
	return &GrantRepository{
		queries: queries,
		db:      db,
	}
}

func (r *GrantRepository) Create(ctx context.Context, g *credit.Grant) error {
	if _, err := r.queries.CreateGrant(ctx, r.db, converter.GrantToCreateParams(g)); err != nil {
		return infra.WrapRepoErr("failed to create credit grant", err)
	}
	return nil
}

// ConsumeOne decrements in a single conditional statement so concurrent bookings
// can never drive a grant below zero.
func (r *GrantRepository) ConsumeOne(ctx context.Context, grantID uuid.UUID) (int, error) {
	remaining, err := r.queries.ConsumeGrantCredit(ctx, r.db, grantID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("credit grant exhausted", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to consume credit", err)
	}
	return int(remaining), nil
}

func (r *GrantRepository) MarkGraceUsed(ctx context.Context, grantID uuid.UUID) error {
	n, err := r.queries.MarkGrantGraceUsed(ctx, r.db, grantID)
	if err != nil {
		return infra.WrapRepoErr("failed to flag grace cancellation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("credit grant not found", nil, infra.KindNotFound)
	}
	return nil
}

package repository

import (
	"context"

	"session-ledger/internal/infra"
	"session-ledger/internal/infra/query"
	"session-ledger/internal/usecase/shared"
)

type PurchaseWriteQueries interface {
	InsertProcessedPurchase(ctx context.Context, db query.DBTX, arg query.InsertProcessedPurchaseParams) (int64, error)
}

type PurchaseRepository struct {
	queries PurchaseWriteQueries
	db      query.DBTX
}

func NewPurchaseRepository(queries PurchaseWriteQueries, db query.DBTX) *PurchaseRepository {
	return &PurchaseRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseRepository) MarkProcessed(ctx context.Context, p shared.PurchaseSnapshot) (bool, error) {
	n, err := r.queries.InsertProcessedPurchase(ctx, r.db, query.InsertProcessedPurchaseParams{
		PurchaseReference: p.Reference,
		ClientID:          p.ClientID,
		GrantID:           p.GrantID,
		ProcessedAt:       p.ProcessedAt,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record processed purchase", err)
	}
	return n == 1, nil
}

package readstore

import (
	"context"

	"session-ledger/internal/infra"
	"session-ledger/internal/infra/query"
	"session-ledger/internal/pkg/pgconv"
)

type PurchaseViewQueries interface {
	GetProcessedPurchase(ctx context.Context, db query.DBTX, purchaseReference string) (query.ProcessedPurchase, error)
}

type PurchaseReadStore struct {
	queries PurchaseViewQueries
	db      query.DBTX
}

func NewPurchaseReadStore(queries PurchaseViewQueries, db query.DBTX) *PurchaseReadStore {
	return &PurchaseReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseReadStore) FindByReference(ctx context.Context, reference string) (*query.ProcessedPurchase, error) {
	row, err := r.queries.GetProcessedPurchase(ctx, r.db, reference)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("purchase not processed", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get processed purchase", err)
	}
	return &row, nil
}

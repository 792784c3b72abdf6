package repository

import (
	"context"

	"session-ledger/internal/domain/cancellation"
	"session-ledger/internal/infra"
	"session-ledger/internal/infra/query"
	"session-ledger/internal/infra/repository/converter"
)

type CancellationWriteQueries interface {
	CreateCancellationRecord(ctx context.Context, db query.DBTX, arg query.CreateCancellationRecordParams) error
}

type CancellationRepository struct {
	queries CancellationWriteQueries
	db      query.DBTX
}

func NewCancellationRepository(queries CancellationWriteQueries, db query.DBTX) *CancellationRepository {
	return &CancellationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CancellationRepository) Create(ctx context.Context, rec *cancellation.Record) error {
	if err := r.queries.CreateCancellationRecord(ctx, r.db, converter.RecordToCreateParams(rec)); err != nil {
		return infra.WrapRepoErr("failed to create cancellation record", err)
	}
	return nil
}

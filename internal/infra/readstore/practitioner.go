package readstore

import (
	"context"

	"session-ledger/internal/infra"
	"session-ledger/internal/infra/query"
	"session-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PractitionerViewQueries interface {
	GetPractitioner(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Practitioner, error)
}

type PractitionerReadStore struct {
	queries PractitionerViewQueries
	db      query.DBTX
}

func NewPractitionerReadStore(queries PractitionerViewQueries, db query.DBTX) *PractitionerReadStore {
	return &PractitionerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PractitionerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*query.Practitioner, error) {
	row, err := r.queries.GetPractitioner(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("practitioner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get practitioner", err)
	}
	return &row, nil
}

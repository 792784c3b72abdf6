package readstore

import (
	"context"

	"session-ledger/internal/domain/policy"
	"session-ledger/internal/infra"
	"session-ledger/internal/infra/query"
	"session-ledger/internal/infra/repository/converter"
	"session-ledger/internal/pkg/pgconv"
)

type PolicyViewQueries interface {
	GetActivePolicy(ctx context.Context, db query.DBTX) (query.CancellationPolicy, error)
	ListPolicies(ctx context.Context, db query.DBTX) ([]query.CancellationPolicy, error)
}

type PolicyReadStore struct {
	queries PolicyViewQueries
	db      query.DBTX
}

func NewPolicyReadStore(queries PolicyViewQueries, db query.DBTX) *PolicyReadStore {
	return &PolicyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PolicyReadStore) FindActive(ctx context.Context) (*policy.Policy, error) {
	row, err := r.queries.GetActivePolicy(ctx, r.db)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active cancellation policy", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get active policy", err)
	}
	p, err := converter.PolicyFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode policy", err)
	}
	return p, nil
}

// List returns every version, newest first.
func (r *PolicyReadStore) List(ctx context.Context) ([]*policy.Policy, error) {
	rows, err := r.queries.ListPolicies(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list policies", err)
	}
	out := make([]*policy.Policy, 0, len(rows))
	for _, row := range rows {
		p, err := converter.PolicyFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode policy", err)
		}
		out = append(out, p)
	}
	return out, nil
}

package repository

import (
	"context"

	"session-ledger/internal/domain/policy"
	"session-ledger/internal/infra"
	"session-ledger/internal/infra/query"
	"session-ledger/internal/infra/repository/converter"
)

type PolicyWriteQueries interface {
	LockPolicyPublication(ctx context.Context, db query.DBTX) error
	DeactivatePolicies(ctx context.Context, db query.DBTX) (int64, error)
	CreatePolicy(ctx context.Context, db query.DBTX, arg query.CreatePolicyParams) (query.CancellationPolicy, error)
}

type PolicyRepository struct {
	queries PolicyWriteQueries
	db      query.DBTX
}

func NewPolicyRepository(queries PolicyWriteQueries, db query.DBTX) *PolicyRepository {
	return &PolicyRepository{
		queries: queries,
		db:      db,
	}
}

// Publish must run inside a transaction: the previous version is deactivated and
// the new one inserted as the only active version.
func (r *PolicyRepository) Publish(ctx context.Context, p *policy.Policy) (*policy.Policy, error) {
	params, err := converter.PolicyToCreateParams(p)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode policy", err)
	}
	params.IsActive = true

	if err := r.queries.LockPolicyPublication(ctx, r.db); err != nil {
		return nil, infra.WrapRepoErr("failed to lock policy publication", err)
	}
	if _, err := r.queries.DeactivatePolicies(ctx, r.db); err != nil {
		return nil, infra.WrapRepoErr("failed to deactivate current policy", err)
	}
	row, err := r.queries.CreatePolicy(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert policy version", err)
	}
	stored, err := converter.PolicyFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode policy", err)
	}
	return stored, nil
}

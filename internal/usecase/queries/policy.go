package queries

import (
	"context"

	"session-ledger/internal/domain/policy"
	"session-ledger/internal/infra"
	"session-ledger/internal/pkg/errs"
)

var ErrNoActivePolicy = errs.Kind("no active cancellation policy", errs.ErrNotFound)

type PolicyReadStore interface {
	FindActive(ctx context.Context) (*policy.Policy, error)
	List(ctx context.Context) ([]*policy.Policy, error)
}

type PolicyQueries interface {
	Active(ctx context.Context) (*PolicyView, error)
	Versions(ctx context.Context) ([]*PolicyView, error)
}

type policyQueriesImpl struct {
	store PolicyReadStore
}

func NewPolicyQueries(store PolicyReadStore) PolicyQueries {
	return &policyQueriesImpl{store: store}
}

func (q *policyQueriesImpl) Active(ctx context.Context) (*PolicyView, error) {
	p, err := q.store.FindActive(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithCause(ErrNoActivePolicy, err)
		}
		return nil, err
	}
	return ToPolicyView(p), nil
}

func (q *policyQueriesImpl) Versions(ctx context.Context) ([]*PolicyView, error) {
	items, err := q.store.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*PolicyView, 0, len(items))
	for _, p := range items {
		views = append(views, ToPolicyView(p))
	}
	return views, nil
}

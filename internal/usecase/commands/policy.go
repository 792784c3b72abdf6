package commands

import (
	"context"
	"log/slog"

	"session-ledger/internal/domain/policy"
	"session-ledger/internal/pkg/clock"
	"session-ledger/internal/usecase/shared"
)

type PolicyCommands interface {
	Publish(ctx context.Context, draft policy.Draft) (*policy.Policy, error)
}

type policyUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPolicyUseCase(uow shared.UnitOfWork, clk clock.Clock) PolicyCommands {
	return &policyUseCaseImpl{uow: uow, clock: clk}
}

// Publish appends a new active version; earlier versions stay for audit.
func (uc *policyUseCaseImpl) Publish(ctx context.Context, draft policy.Draft) (*policy.Policy, error) {
	p, err := policy.NewPolicy(draft, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var published *policy.Policy
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var perr error
		published, perr = tx.Policies().Publish(ctx, p)
		return perr
	})
	if err != nil {
		return nil, err
	}

	slog.Info("cancellation policy published",
		"version", published.Version(),
		"standard_hours", published.StandardCancellationHours(),
		"late_hours", published.LateCancellationHours())
	return published, nil
}

package converter

import (
	"encoding/json"

	"session-ledger/internal/domain/policy"
	"session-ledger/internal/infra/query"
	"session-ledger/internal/pkg/errs"
	"session-ledger/internal/pkg/money"

	"github.com/shopspring/decimal"
)

func PolicyToCreateParams(p *policy.Policy) (query.CreatePolicyParams, error) {
	fees, err := json.Marshal(p.LateFees())
	if err != nil {
		return query.CreatePolicyParams{}, errs.Wrap(err, "failed to encode late fees")
	}
	return query.CreatePolicyParams{
		StandardCancellationHours: p.StandardCancellationHours(),
		LateCancellationHours:     p.LateCancellationHours(),
		LateFees:                  fees,
		GraceCancellationsAllowed: p.GraceCancellationsAllowed(),
		IsActive:                  p.IsActive(),
		Text:                      p.Text(),
		CreatedAt:                 p.CreatedAt(),
	}, nil
}

func PolicyFromRow(row query.CancellationPolicy) (*policy.Policy, error) {
	fees := map[money.Currency]decimal.Decimal{}
	if len(row.LateFees) > 0 {
		if err := json.Unmarshal(row.LateFees, &fees); err != nil {
			return nil, errs.Wrapf(err, "failed to decode late fees of policy v%d", row.Version)
		}
	}
	return policy.ReconstructPolicy(
		row.Version,
		row.StandardCancellationHours,
		row.LateCancellationHours,
		fees,
		row.GraceCancellationsAllowed,
		row.IsActive,
		row.Text,
		row.CreatedAt.UTC(),
	), nil
}

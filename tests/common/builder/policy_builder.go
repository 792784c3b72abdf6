//go:build unit || e2e

package builder

import (
	"time"

	"session-ledger/internal/domain/policy"
	"session-ledger/internal/pkg/money"

	"github.com/shopspring/decimal"
)

type PolicyBuilder struct {
	Version       int32
	StandardHours int32
	LateHours     int32
	LateFees      map[string]decimal.Decimal
	GraceAllowed  int32
	Text          string
	CreatedAt     time.Time
}

// Defaults mirror the reference policy: 12h standard, 5h late, 25 USD fee, one grace.
func NewPolicyBuilder() *PolicyBuilder {
	return &PolicyBuilder{
		Version:       1,
		StandardHours: 12,
		LateHours:     5,
		LateFees:      map[string]decimal.Decimal{"USD": decimal.NewFromInt(25)},
		GraceAllowed:  1,
		Text:          "Cancellations less than 12 hours before the session incur a fee.",
		CreatedAt:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *PolicyBuilder) With(mutate func(*PolicyBuilder)) *PolicyBuilder {
	mutate(b)
	return b
}

func (b *PolicyBuilder) WithThresholds(standard, late int32) *PolicyBuilder {
	b.StandardHours = standard
	b.LateHours = late
	return b
}

func (b *PolicyBuilder) WithFee(currency, amount string) *PolicyBuilder {
	b.LateFees[currency] = decimal.RequireFromString(amount)
	return b
}

func (b *PolicyBuilder) WithGrace(allowed int32) *PolicyBuilder {
	b.GraceAllowed = allowed
	return b
}

func (b *PolicyBuilder) Draft() policy.Draft {
	return policy.Draft{
		StandardCancellationHours: b.StandardHours,
		LateCancellationHours:     b.LateHours,
		LateFees:                  b.LateFees,
		GraceCancellationsAllowed: b.GraceAllowed,
		Text:                      b.Text,
	}
}

// Build methods
func (b *PolicyBuilder) BuildDomain() (*policy.Policy, error) {
	return policy.NewPolicy(b.Draft(), b.CreatedAt)
}

func (b *PolicyBuilder) BuildStored() *policy.Policy {
	fees := make(map[money.Currency]decimal.Decimal, len(b.LateFees))
	for k, v := range b.LateFees {
		fees[money.Currency(k)] = v
	}
	return policy.ReconstructPolicy(b.Version, b.StandardHours, b.LateHours, fees, b.GraceAllowed, true, b.Text, b.CreatedAt)
}

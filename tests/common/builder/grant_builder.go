//go:build unit || e2e

package builder

import (
	"time"

	"session-ledger/internal/domain/credit"
	"session-ledger/internal/pkg/money"
	"session-ledger/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GrantBuilder struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	SessionTypeID *uuid.UUID
	Count         int
	Remaining     int
	Amount        decimal.Decimal
	Currency      string
	Reference     string
	Kind          credit.SourceKind
	PurchasedAt   time.Time
	ExpiresAt     *time.Time
	GraceUsed     bool
}

func NewGrantBuilder() *GrantBuilder {
	return &GrantBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Count:       5,
		Remaining:   5,
		Amount:      decimal.NewFromInt(300),
		Currency:    "USD",
		Reference:   "pi_" + uuid.NewString(),
		Kind:        credit.SourcePurchase,
		PurchasedAt: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *GrantBuilder) With(mutate func(*GrantBuilder)) *GrantBuilder {
	mutate(b)
	return b
}

func (b *GrantBuilder) WithOwner(id uuid.UUID) *GrantBuilder {
	b.OwnerID = id
	return b
}

func (b *GrantBuilder) WithSessionType(id uuid.UUID) *GrantBuilder {
	b.SessionTypeID = ptr.Of(id)
	return b
}

func (b *GrantBuilder) WithCredits(count, remaining int) *GrantBuilder {
	b.Count = count
	b.Remaining = remaining
	return b
}

func (b *GrantBuilder) WithAmount(amount, currency string) *GrantBuilder {
	b.Amount = decimal.RequireFromString(amount)
	b.Currency = currency
	return b
}

func (b *GrantBuilder) PurchasedAtTime(t time.Time) *GrantBuilder {
	b.PurchasedAt = t
	return b
}

func (b *GrantBuilder) ExpiringAt(t time.Time) *GrantBuilder {
	b.ExpiresAt = ptr.Of(t)
	return b
}

func (b *GrantBuilder) Source() credit.Source {
	return credit.Source{
		Kind:      b.Kind,
		Reference: b.Reference,
		Currency:  money.Currency(b.Currency),
		Amount:    b.Amount,
	}
}

// Build methods
func (b *GrantBuilder) BuildDomain() (*credit.Grant, error) {
	return credit.NewGrant(b.OwnerID, b.SessionTypeID, b.Count, b.PurchasedAt, b.ExpiresAt, b.Source())
}

// BuildStored returns a grant as loaded from storage, with Remaining applied.
func (b *GrantBuilder) BuildStored() *credit.Grant {
	return credit.ReconstructGrant(
		b.ID, b.OwnerID, b.SessionTypeID,
		b.Count, b.Remaining,
		money.UnitPrice(b.Amount, b.Count),
		b.PurchasedAt, b.ExpiresAt, b.GraceUsed,
		b.Source(),
	)
}

package queries

import (
	"time"

	"session-ledger/internal/domain/credit"
	"session-ledger/internal/domain/policy"

	"github.com/shopspring/decimal"
)

func toGrantView(g *credit.Grant, now time.Time) *GrantView {
	src := g.Source()
	return &GrantView{
		ID:                    g.ID(),
		SessionTypeID:         g.SessionTypeID(),
		InitialCredits:        g.InitialCredits(),
		CreditsRemaining:      g.CreditsRemaining(),
		UnitPrice:             g.UnitPrice(),
		Currency:              src.Currency.String(),
		SourceKind:            string(src.Kind),
		SourceReference:       src.Reference,
		PurchasedAt:           g.PurchasedAt(),
		ExpiresAt:             g.ExpiresAt(),
		GraceCancellationUsed: g.GraceCancellationUsed(),
		Redeemable:            g.IsRedeemable(now),
	}
}

func ToPolicyView(p *policy.Policy) *PolicyView {
	fees := make(map[string]decimal.Decimal, len(p.LateFees()))
	for c, fee := range p.LateFees() {
		fees[c.String()] = fee
	}
	return &PolicyView{
		Version:                   p.Version(),
		StandardCancellationHours: p.StandardCancellationHours(),
		LateCancellationHours:     p.LateCancellationHours(),
		LateFees:                  fees,
		GraceCancellationsAllowed: p.GraceCancellationsAllowed(),
		IsActive:                  p.IsActive(),
		Text:                      p.Text(),
		CreatedAt:                 p.CreatedAt(),
	}
}

package converter

import (
	"session-ledger/internal/domain/credit"
	"session-ledger/internal/infra/query"
	"session-ledger/internal/pkg/money"
	"session-ledger/internal/pkg/pgconv"
)

func GrantToCreateParams(g *credit.Grant) query.CreateGrantParams {
	src := g.Source()
	return query.CreateGrantParams{
		ID:                    g.ID(),
		OwnerID:               g.OwnerID(),
		SessionTypeID:         pgconv.UUIDPtrToPgtype(g.SessionTypeID()),
		InitialCredits:        pgconv.IntToInt32(g.InitialCredits()),
		CreditsRemaining:      pgconv.IntToInt32(g.CreditsRemaining()),
		UnitPrice:             pgconv.DecimalToNumeric(g.UnitPrice()),
		PurchasedAt:           g.PurchasedAt(),
		ExpiresAt:             pgconv.TimePtrToPgtype(g.ExpiresAt()),
		GraceCancellationUsed: g.GraceCancellationUsed(),
		SourceKind:            string(src.Kind),
		SourceReference:       src.Reference,
		Currency:              src.Currency.String(),
		Amount:                pgconv.DecimalToNumeric(src.Amount),
	}
}

func GrantFromRow(row query.CreditGrant) *credit.Grant {
	return credit.ReconstructGrant(
		row.ID,
		row.OwnerID,
		pgconv.UUIDPtrFromPgtype(row.SessionTypeID),
		int(row.InitialCredits),
		int(row.CreditsRemaining),
		pgconv.DecimalFromNumeric(row.UnitPrice),
		row.PurchasedAt.UTC(),
		utcPtr(pgconv.TimePtrFromPgtype(row.ExpiresAt)),
		row.GraceCancellationUsed,
		credit.Source{
			Kind:      credit.SourceKind(row.SourceKind),
			Reference: row.SourceReference,
			Currency:  money.Currency(row.Currency),
			Amount:    pgconv.DecimalFromNumeric(row.Amount),
		},
	)
}

func GrantsFromRows(rows []query.CreditGrant) []*credit.Grant {
	grants := make([]*credit.Grant, 0, len(rows))
	for _, row := range rows {
		grants = append(grants, GrantFromRow(row))
	}
	return grants
}

package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const grantColumns = `id, owner_id, session_type_id, initial_credits, credits_remaining, unit_price,
    purchased_at, expires_at, grace_cancellation_used, source_kind, source_reference, currency,
    amount, created_at`

func scanGrant(row pgx.Row) (CreditGrant, error) {
	var i CreditGrant
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.SessionTypeID,
		&i.InitialCredits,
		&i.CreditsRemaining,
		&i.UnitPrice,
		&i.PurchasedAt,
		&i.ExpiresAt,
		&i.GraceCancellationUsed,
		&i.SourceKind,
		&i.SourceReference,
		&i.Currency,
		&i.Amount,
		&i.CreatedAt,
	)
	return i, err
}

func collectGrants(rows pgx.Rows) ([]CreditGrant, error) {
	defer rows.Close()
	items := []CreditGrant{}
	for rows.Next() {
		i, err := scanGrant(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createGrant = `-- name: CreateGrant :one
INSERT INTO credit_grants (
    id, owner_id, session_type_id, initial_credits, credits_remaining, unit_price,
    purchased_at, expires_at, grace_cancellation_used, source_kind, source_reference,
    currency, amount
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
)
RETURNING ` + grantColumns

type CreateGrantParams struct {
	ID                    uuid.UUID
	OwnerID               uuid.UUID
	SessionTypeID         pgtype.UUID
	InitialCredits        int32
	CreditsRemaining      int32
	UnitPrice             pgtype.Numeric
	PurchasedAt           time.Time
	ExpiresAt             pgtype.Timestamptz
	GraceCancellationUsed bool
	SourceKind            string
	SourceReference       string
	Currency              string
	Amount                pgtype.Numeric
}

func (q *Queries) CreateGrant(ctx context.Context, db DBTX, arg CreateGrantParams) (CreditGrant, error) {
	row := db.QueryRow(ctx, createGrant,
		arg.ID,
		arg.OwnerID,
		arg.SessionTypeID,
		arg.InitialCredits,
		arg.CreditsRemaining,
		arg.UnitPrice,
		arg.PurchasedAt,
		arg.ExpiresAt,
		arg.GraceCancellationUsed,
		arg.SourceKind,
		arg.SourceReference,
		arg.Currency,
		arg.Amount,
	)
	return scanGrant(row)
}

const getGrant = `-- name: GetGrant :one
SELECT ` + grantColumns + `
FROM credit_grants
WHERE id = $1
`

func (q *Queries) GetGrant(ctx context.Context, db DBTX, id uuid.UUID) (CreditGrant, error) {
	return scanGrant(db.QueryRow(ctx, getGrant, id))
}

const listRedeemableGrants = `-- name: ListRedeemableGrants :many
SELECT ` + grantColumns + `
FROM credit_grants
WHERE owner_id = $1
  AND credits_remaining > 0
  AND (expires_at IS NULL OR expires_at > $2)
ORDER BY purchased_at, id
`

type ListRedeemableGrantsParams struct {
	OwnerID uuid.UUID
	Now     time.Time
}

func (q *Queries) ListRedeemableGrants(ctx context.Context, db DBTX, arg ListRedeemableGrantsParams) ([]CreditGrant, error) {
	rows, err := db.Query(ctx, listRedeemableGrants, arg.OwnerID, arg.Now)
	if err != nil {
		return nil, err
	}
	return collectGrants(rows)
}

const listGrantsByOwner = `-- name: ListGrantsByOwner :many
SELECT ` + grantColumns + `
FROM credit_grants
WHERE owner_id = $1
ORDER BY purchased_at, id
`

func (q *Queries) ListGrantsByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]CreditGrant, error) {
	rows, err := db.Query(ctx, listGrantsByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	return collectGrants(rows)
}

const consumeGrantCredit = `-- name: ConsumeGrantCredit :one
UPDATE credit_grants
SET credits_remaining = credits_remaining - 1
WHERE id = $1
  AND credits_remaining > 0
RETURNING credits_remaining
`

// ConsumeGrantCredit returns pgx.ErrNoRows when the grant is already exhausted.
func (q *Queries) ConsumeGrantCredit(ctx context.Context, db DBTX, id uuid.UUID) (int32, error) {
	row := db.QueryRow(ctx, consumeGrantCredit, id)
	var creditsRemaining int32
	err := row.Scan(&creditsRemaining)
	return creditsRemaining, err
}

const markGrantGraceUsed = `-- name: MarkGrantGraceUsed :execrows
UPDATE credit_grants
SET grace_cancellation_used = true
WHERE id = $1
`

func (q *Queries) MarkGrantGraceUsed(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, markGrantGraceUsed, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

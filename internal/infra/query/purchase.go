package query

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const insertProcessedPurchase = `-- name: InsertProcessedPurchase :execrows
INSERT INTO processed_purchases (purchase_reference, client_id, grant_id, processed_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (purchase_reference) DO NOTHING
`

type InsertProcessedPurchaseParams struct {
	PurchaseReference string
	ClientID          uuid.UUID
	GrantID           uuid.UUID
	ProcessedAt       time.Time
}

// InsertProcessedPurchase affects zero rows when the reference was already processed.
func (q *Queries) InsertProcessedPurchase(ctx context.Context, db DBTX, arg InsertProcessedPurchaseParams) (int64, error) {
	result, err := db.Exec(ctx, insertProcessedPurchase,
		arg.PurchaseReference,
		arg.ClientID,
		arg.GrantID,
		arg.ProcessedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getProcessedPurchase = `-- name: GetProcessedPurchase :one
SELECT purchase_reference, client_id, grant_id, processed_at
FROM processed_purchases
WHERE purchase_reference = $1
`

func (q *Queries) GetProcessedPurchase(ctx context.Context, db DBTX, purchaseReference string) (ProcessedPurchase, error) {
	row := db.QueryRow(ctx, getProcessedPurchase, purchaseReference)
	var i ProcessedPurchase
	err := row.Scan(
		&i.PurchaseReference,
		&i.ClientID,
		&i.GrantID,
		&i.ProcessedAt,
	)
	return i, err
}

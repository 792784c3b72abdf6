package query

import (
	"context"

	"github.com/google/uuid"
)

const upsertClient = `-- name: UpsertClient :exec
INSERT INTO clients (id) VALUES ($1)
ON CONFLICT (id) DO NOTHING
`

func (q *Queries) UpsertClient(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, upsertClient, id)
	return err
}

const getClient = `-- name: GetClient :one
SELECT id, grace_cancellations_used, created_at, updated_at
FROM clients
WHERE id = $1
`

func (q *Queries) GetClient(ctx context.Context, db DBTX, id uuid.UUID) (Client, error) {
	row := db.QueryRow(ctx, getClient, id)
	var i Client
	err := row.Scan(
		&i.ID,
		&i.GraceCancellationsUsed,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const claimGraceCancellation = `-- name: ClaimGraceCancellation :execrows
UPDATE clients
SET grace_cancellations_used = grace_cancellations_used + 1,
    updated_at = now()
WHERE id = $1
  AND grace_cancellations_used < $2
`

type ClaimGraceCancellationParams struct {
	ID      uuid.UUID
	Allowed int32
}

func (q *Queries) ClaimGraceCancellation(ctx context.Context, db DBTX, arg ClaimGraceCancellationParams) (int64, error) {
	result, err := db.Exec(ctx, claimGraceCancellation, arg.ID, arg.Allowed)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

package query

import (
	"context"

	"github.com/google/uuid"
)

const getPractitioner = `-- name: GetPractitioner :one
SELECT id, display_name, is_active, created_at
FROM practitioners
WHERE id = $1
`

func (q *Queries) GetPractitioner(ctx context.Context, db DBTX, id uuid.UUID) (Practitioner, error) {
	row := db.QueryRow(ctx, getPractitioner, id)
	var i Practitioner
	err := row.Scan(
		&i.ID,
		&i.DisplayName,
		&i.IsActive,
		&i.CreatedAt,
	)
	return i, err
}

package query

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

const policyColumns = `version, standard_cancellation_hours, late_cancellation_hours, late_fees,
    grace_cancellations_allowed, is_active, text, created_at`

func scanPolicy(row pgx.Row) (CancellationPolicy, error) {
	var i CancellationPolicy
	err := row.Scan(
		&i.Version,
		&i.StandardCancellationHours,
		&i.LateCancellationHours,
		&i.LateFees,
		&i.GraceCancellationsAllowed,
		&i.IsActive,
		&i.Text,
		&i.CreatedAt,
	)
	return i, err
}

const getActivePolicy = `-- name: GetActivePolicy :one
SELECT ` + policyColumns + `
FROM cancellation_policies
WHERE is_active
`

func (q *Queries) GetActivePolicy(ctx context.Context, db DBTX) (CancellationPolicy, error) {
	return scanPolicy(db.QueryRow(ctx, getActivePolicy))
}

const listPolicies = `-- name: ListPolicies :many
SELECT ` + policyColumns + `
FROM cancellation_policies
ORDER BY version DESC
`

func (q *Queries) ListPolicies(ctx context.Context, db DBTX) ([]CancellationPolicy, error) {
	rows, err := db.Query(ctx, listPolicies)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []CancellationPolicy{}
	for rows.Next() {
		i, err := scanPolicy(rows)
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

const lockPolicyPublication = `-- name: LockPolicyPublication :exec
SELECT pg_advisory_xact_lock(hashtext('cancellation_policies'))
`

// LockPolicyPublication serializes publishers until the surrounding transaction ends.
func (q *Queries) LockPolicyPublication(ctx context.Context, db DBTX) error {
	_, err := db.Exec(ctx, lockPolicyPublication)
	return err
}

const deactivatePolicies = `-- name: DeactivatePolicies :execrows
UPDATE cancellation_policies
SET is_active = false
WHERE is_active
`

func (q *Queries) DeactivatePolicies(ctx context.Context, db DBTX) (int64, error) {
	result, err := db.Exec(ctx, deactivatePolicies)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const createPolicy = `-- name: CreatePolicy :one
INSERT INTO cancellation_policies (
    standard_cancellation_hours, late_cancellation_hours, late_fees,
    grace_cancellations_allowed, is_active, text, created_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7
)
RETURNING ` + policyColumns

type CreatePolicyParams struct {
	StandardCancellationHours int32
	LateCancellationHours     int32
	LateFees                  []byte
	GraceCancellationsAllowed int32
	IsActive                  bool
	Text                      string
	CreatedAt                 time.Time
}

func (q *Queries) CreatePolicy(ctx context.Context, db DBTX, arg CreatePolicyParams) (CancellationPolicy, error) {
	row := db.QueryRow(ctx, createPolicy,
		arg.StandardCancellationHours,
		arg.LateCancellationHours,
		arg.LateFees,
		arg.GraceCancellationsAllowed,
		arg.IsActive,
		arg.Text,
		arg.CreatedAt,
	)
	return scanPolicy(row)
}

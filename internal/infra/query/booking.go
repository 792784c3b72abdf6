package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, client_id, practitioner_id, scheduled_at, duration_minutes, status,
    cancellation_policy_version, session_type_id, credit_grant_id, room_name, created_at, updated_at`

func scanBooking(row pgx.Row) (Booking, error) {
	var i Booking
	err := row.Scan(
		&i.ID,
		&i.ClientID,
		&i.PractitionerID,
		&i.ScheduledAt,
		&i.DurationMinutes,
		&i.Status,
		&i.CancellationPolicyVersion,
		&i.SessionTypeID,
		&i.CreditGrantID,
		&i.RoomName,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createBooking = `-- name: CreateBooking :one
INSERT INTO bookings (
    id, client_id, practitioner_id, scheduled_at, duration_minutes, status,
    cancellation_policy_version, session_type_id, credit_grant_id, room_name,
    created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
)
RETURNING ` + bookingColumns

type CreateBookingParams struct {
	ID                        uuid.UUID
	ClientID                  uuid.UUID
	PractitionerID            uuid.UUID
	ScheduledAt               time.Time
	DurationMinutes           int32
	Status                    string
	CancellationPolicyVersion pgtype.Int4
	SessionTypeID             pgtype.UUID
	CreditGrantID             uuid.UUID
	RoomName                  string
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (Booking, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.ID,
		arg.ClientID,
		arg.PractitionerID,
		arg.ScheduledAt,
		arg.DurationMinutes,
		arg.Status,
		arg.CancellationPolicyVersion,
		arg.SessionTypeID,
		arg.CreditGrantID,
		arg.RoomName,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return scanBooking(row)
}

const getBooking = `-- name: GetBooking :one
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBooking(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	return scanBooking(db.QueryRow(ctx, getBooking, id))
}

const deleteBooking = `-- name: DeleteBooking :execrows
DELETE FROM bookings
WHERE id = $1
`

func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteBooking, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const cancelScheduledBooking = `-- name: CancelScheduledBooking :execrows
UPDATE bookings
SET status = 'cancelled',
    updated_at = $2
WHERE id = $1
  AND status = 'scheduled'
`

type CancelScheduledBookingParams struct {
	ID        uuid.UUID
	UpdatedAt time.Time
}

func (q *Queries) CancelScheduledBooking(ctx context.Context, db DBTX, arg CancelScheduledBookingParams) (int64, error) {
	result, err := db.Exec(ctx, cancelScheduledBooking, arg.ID, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getBookingView = `-- name: GetBookingView :one
SELECT b.id, b.client_id, b.practitioner_id, p.display_name, b.scheduled_at, b.duration_minutes,
    b.status, b.cancellation_policy_version, b.session_type_id, b.credit_grant_id, b.room_name,
    b.created_at, b.updated_at,
    c.cancellation_type, c.cancelled_at, c.fee_charged, c.credit_returned, c.credit_currency
FROM bookings b
JOIN practitioners p ON p.id = b.practitioner_id
LEFT JOIN cancellation_records c ON c.booking_id = b.id
WHERE b.id = $1
`

type GetBookingViewRow struct {
	ID                        uuid.UUID
	ClientID                  uuid.UUID
	PractitionerID            uuid.UUID
	PractitionerName          string
	ScheduledAt               time.Time
	DurationMinutes           int32
	Status                    string
	CancellationPolicyVersion pgtype.Int4
	SessionTypeID             pgtype.UUID
	CreditGrantID             uuid.UUID
	RoomName                  string
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
	CancellationType          pgtype.Text
	CancelledAt               pgtype.Timestamptz
	FeeCharged                pgtype.Numeric
	CreditReturned            pgtype.Numeric
	CreditCurrency            pgtype.Text
}

func (q *Queries) GetBookingView(ctx context.Context, db DBTX, id uuid.UUID) (GetBookingViewRow, error) {
	row := db.QueryRow(ctx, getBookingView, id)
	var i GetBookingViewRow
	err := row.Scan(
		&i.ID,
		&i.ClientID,
		&i.PractitionerID,
		&i.PractitionerName,
		&i.ScheduledAt,
		&i.DurationMinutes,
		&i.Status,
		&i.CancellationPolicyVersion,
		&i.SessionTypeID,
		&i.CreditGrantID,
		&i.RoomName,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CancellationType,
		&i.CancelledAt,
		&i.FeeCharged,
		&i.CreditReturned,
		&i.CreditCurrency,
	)
	return i, err
}

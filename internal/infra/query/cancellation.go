package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createCancellationRecord = `-- name: CreateCancellationRecord :exec
INSERT INTO cancellation_records (
    id, booking_id, user_id, cancelled_at, cancellation_type, hours_before_start,
    fee_charged, fee_currency, credit_returned, credit_units_returned, credit_currency,
    returned_grant_id, reason, policy_version, grace_requested
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
)
`

type CreateCancellationRecordParams struct {
	ID                  uuid.UUID
	BookingID           uuid.UUID
	UserID              uuid.UUID
	CancelledAt         time.Time
	CancellationType    string
	HoursBeforeStart    float64
	FeeCharged          pgtype.Numeric
	FeeCurrency         string
	CreditReturned      pgtype.Numeric
	CreditUnitsReturned int32
	CreditCurrency      string
	ReturnedGrantID     pgtype.UUID
	Reason              pgtype.Text
	PolicyVersion       int32
	GraceRequested      bool
}

func (q *Queries) CreateCancellationRecord(ctx context.Context, db DBTX, arg CreateCancellationRecordParams) error {
	_, err := db.Exec(ctx, createCancellationRecord,
		arg.ID,
		arg.BookingID,
		arg.UserID,
		arg.CancelledAt,
		arg.CancellationType,
		arg.HoursBeforeStart,
		arg.FeeCharged,
		arg.FeeCurrency,
		arg.CreditReturned,
		arg.CreditUnitsReturned,
		arg.CreditCurrency,
		arg.ReturnedGrantID,
		arg.Reason,
		arg.PolicyVersion,
		arg.GraceRequested,
	)
	return err
}

const getCancellationRecordByBooking = `-- name: GetCancellationRecordByBooking :one
SELECT id, booking_id, user_id, cancelled_at, cancellation_type, hours_before_start,
    fee_charged, fee_currency, credit_returned, credit_units_returned, credit_currency,
    returned_grant_id, reason, policy_version, grace_requested
FROM cancellation_records
WHERE booking_id = $1
`

func (q *Queries) GetCancellationRecordByBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) (CancellationRecord, error) {
	row := db.QueryRow(ctx, getCancellationRecordByBooking, bookingID)
	var i CancellationRecord
	err := row.Scan(
		&i.ID,
		&i.BookingID,
		&i.UserID,
		&i.CancelledAt,
		&i.CancellationType,
		&i.HoursBeforeStart,
		&i.FeeCharged,
		&i.FeeCurrency,
		&i.CreditReturned,
		&i.CreditUnitsReturned,
		&i.CreditCurrency,
		&i.ReturnedGrantID,
		&i.Reason,
		&i.PolicyVersion,
		&i.GraceRequested,
	)
	return i, err
}

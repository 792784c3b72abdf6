package converter

import (
	"session-ledger/internal/domain/cancellation"
	"session-ledger/internal/infra/query"
	"session-ledger/internal/pkg/money"
	"session-ledger/internal/pkg/pgconv"
)

func RecordToCreateParams(r *cancellation.Record) query.CreateCancellationRecordParams {
	return query.CreateCancellationRecordParams{
		ID:                  r.ID(),
		BookingID:           r.BookingID(),
		UserID:              r.UserID(),
		CancelledAt:         r.CancelledAt(),
		CancellationType:    r.Type().String(),
		HoursBeforeStart:    r.HoursBeforeStart(),
		FeeCharged:          pgconv.DecimalToNumeric(r.FeeCharged()),
		FeeCurrency:         r.FeeCurrency().String(),
		CreditReturned:      pgconv.DecimalToNumeric(r.CreditReturned()),
		CreditUnitsReturned: pgconv.IntToInt32(r.CreditUnitsReturned()),
		CreditCurrency:      r.CreditCurrency().String(),
		ReturnedGrantID:     pgconv.UUIDPtrToPgtype(r.ReturnedGrantID()),
		Reason:              pgconv.StringPtrToPgtype(r.Reason()),
		PolicyVersion:       r.PolicyVersion(),
		GraceRequested:      r.GraceRequested(),
	}
}

func RecordFromRow(row query.CancellationRecord) *cancellation.Record {
	return cancellation.ReconstructRecord(
		row.ID,
		row.BookingID,
		row.UserID,
		row.CancelledAt.UTC(),
		cancellation.Type(row.CancellationType),
		row.HoursBeforeStart,
		pgconv.DecimalFromNumeric(row.FeeCharged),
		money.Currency(row.FeeCurrency),
		pgconv.DecimalFromNumeric(row.CreditReturned),
		int(row.CreditUnitsReturned),
		money.Currency(row.CreditCurrency),
		pgconv.UUIDPtrFromPgtype(row.ReturnedGrantID),
		pgconv.StringPtrFromPgtype(row.Reason),
		row.PolicyVersion,
		row.GraceRequested,
	)
}

package cancellation

import (
	"strings"
	"time"
	"unicode/utf8"

	"session-ledger/internal/pkg/errs"
	"session-ledger/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxReasonLength = 500

var ErrReasonTooLong = errs.Kind("cancellation reason is too long", errs.ErrInvalidArgument)

// Record is the immutable audit entry written once per cancelled booking.
type Record struct {
	id                  uuid.UUID
	bookingID           uuid.UUID
	userID              uuid.UUID
	cancelledAt         time.Time
	cancellationType    Type
	hoursBeforeStart    float64
	feeCharged          decimal.Decimal
	feeCurrency         money.Currency
	creditReturned      decimal.Decimal
	creditUnitsReturned int
	creditCurrency      money.Currency
	returnedGrantID     *uuid.UUID
	reason              *string
	policyVersion       int32
	graceRequested      bool
}

func NormalizeReason(reason *string) (*string, error) {
	if reason == nil {
		return nil, nil
	}
	r := strings.TrimSpace(*reason)
	if r == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(r) > maxReasonLength {
		return nil, ErrReasonTooLong
	}
	return &r, nil
}

func NewRecord(
	bookingID, userID uuid.UUID,
	outcome Outcome,
	returnedGrantID *uuid.UUID,
	reason *string,
	policyVersion int32,
	graceRequested bool,
	now time.Time,
) *Record {
	return &Record{
		id:                  uuid.New(),
		bookingID:           bookingID,
		userID:              userID,
		cancelledAt:         now,
		cancellationType:    outcome.Type,
		hoursBeforeStart:    outcome.HoursBeforeStart,
		feeCharged:          outcome.Fee,
		feeCurrency:         outcome.FeeCurrency,
		creditReturned:      outcome.CreditReturned,
		creditUnitsReturned: outcome.CreditUnitsReturned,
		creditCurrency:      outcome.CreditCurrency,
		returnedGrantID:     returnedGrantID,
		reason:              reason,
		policyVersion:       policyVersion,
		graceRequested:      graceRequested,
	}
}

func ReconstructRecord(
	id, bookingID, userID uuid.UUID,
	cancelledAt time.Time,
	cancellationType Type,
	hoursBeforeStart float64,
	feeCharged decimal.Decimal,
	feeCurrency money.Currency,
	creditReturned decimal.Decimal,
	creditUnitsReturned int,
	creditCurrency money.Currency,
	returnedGrantID *uuid.UUID,
	reason *string,
	policyVersion int32,
	graceRequested bool,
) *Record {
	return &Record{
		id:                  id,
		bookingID:           bookingID,
		userID:              userID,
		cancelledAt:         cancelledAt,
		cancellationType:    cancellationType,
		hoursBeforeStart:    hoursBeforeStart,
		feeCharged:          feeCharged,
		feeCurrency:         feeCurrency,
		creditReturned:      creditReturned,
		creditUnitsReturned: creditUnitsReturned,
		creditCurrency:      creditCurrency,
		returnedGrantID:     returnedGrantID,
		reason:              reason,
		policyVersion:       policyVersion,
		graceRequested:      graceRequested,
	}
}

func (r *Record) ID() uuid.UUID                   { return r.id }
func (r *Record) BookingID() uuid.UUID            { return r.bookingID }
func (r *Record) UserID() uuid.UUID               { return r.userID }
func (r *Record) CancelledAt() time.Time          { return r.cancelledAt }
func (r *Record) Type() Type                      { return r.cancellationType }
func (r *Record) HoursBeforeStart() float64       { return r.hoursBeforeStart }
func (r *Record) FeeCharged() decimal.Decimal     { return r.feeCharged }
func (r *Record) FeeCurrency() money.Currency     { return r.feeCurrency }
func (r *Record) CreditReturned() decimal.Decimal { return r.creditReturned }
func (r *Record) CreditUnitsReturned() int        { return r.creditUnitsReturned }
func (r *Record) CreditCurrency() money.Currency  { return r.creditCurrency }
func (r *Record) ReturnedGrantID() *uuid.UUID     { return r.returnedGrantID }
func (r *Record) Reason() *string                 { return r.reason }
func (r *Record) PolicyVersion() int32            { return r.policyVersion }
func (r *Record) GraceRequested() bool            { return r.graceRequested }

package cancellation

import (
	"time"

	"session-ledger/internal/domain/policy"
	"session-ledger/internal/pkg/money"

	"github.com/shopspring/decimal"
)

// Input carries everything the classification needs. GraceGranted must only be
// true when the client's allowance was successfully claimed.
type Input struct {
	ScheduledAt    time.Time
	Now            time.Time
	GraceRequested bool
	GraceGranted   bool
	Currency       money.Currency
	PaidUnitPrice  decimal.Decimal
}

type Outcome struct {
	Type             Type
	HoursBeforeStart float64
	Fee              decimal.Decimal
	FeeCurrency      money.Currency
	// CreditReturned is the cash value of the unit handed back.
	CreditReturned      decimal.Decimal
	CreditUnitsReturned int
	CreditCurrency      money.Currency
	GraceRejected       bool
}

// Evaluate classifies a cancellation against the policy in force.
//
// Late cancellations return one unit worth the paid unit price minus the fee;
// when the fee eats the whole price nothing is returned.
func Evaluate(p *policy.Policy, in Input) (Outcome, error) {
	hours := in.ScheduledAt.Sub(in.Now).Hours()
	out := Outcome{
		HoursBeforeStart: hours,
		Fee:              decimal.Zero,
		FeeCurrency:      in.Currency,
		CreditReturned:   decimal.Zero,
		CreditCurrency:   in.Currency,
		GraceRejected:    in.GraceRequested && !in.GraceGranted,
	}

	switch {
	case in.GraceRequested && in.GraceGranted:
		out.Type = TypeGrace
		out.CreditReturned = in.PaidUnitPrice
		out.CreditUnitsReturned = 1

	case hours >= float64(p.StandardCancellationHours()):
		out.Type = TypeStandard
		out.CreditReturned = in.PaidUnitPrice
		out.CreditUnitsReturned = 1

	case hours >= float64(p.LateCancellationHours()):
		fee, err := p.LateFee(in.Currency)
		if err != nil {
			return Outcome{}, err
		}
		out.Type = TypeLate
		out.Fee = fee
		out.CreditReturned = money.SubtractFloor(in.PaidUnitPrice, fee)
		if out.CreditReturned.IsPositive() {
			out.CreditUnitsReturned = 1
		}

	default:
		out.Type = TypeLastMinute
	}

	return out, nil
}

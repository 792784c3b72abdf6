//go:build unit

package cancellation_test

import (
	"strings"
	"testing"
	"time"

	"session-ledger/internal/domain/cancellation"
	"session-ledger/internal/pkg/errs"
	"session-ledger/internal/pkg/money"
	"session-ledger/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func input(hoursAhead float64, price string) cancellation.Input {
	return cancellation.Input{
		ScheduledAt:   now.Add(time.Duration(hoursAhead * float64(time.Hour))),
		Now:           now,
		Currency:      "USD",
		PaidUnitPrice: decimal.RequireFromString(price),
	}
}

func TestEvaluate_Tiers(t *testing.T) {
	// standard 12h, late 5h, 25 USD
	p := builder.NewPolicyBuilder().BuildStored()

	testCases := []struct {
		name         string
		in           cancellation.Input
		wantType     cancellation.Type
		wantFee      string
		wantReturned string
		wantUnits    int
	}{
		{name: "well ahead is standard", in: input(48, "60"), wantType: cancellation.TypeStandard, wantFee: "0", wantReturned: "60", wantUnits: 1},
		{name: "exactly at standard threshold is standard", in: input(12, "60"), wantType: cancellation.TypeStandard, wantFee: "0", wantReturned: "60", wantUnits: 1},
		{name: "just under standard is late", in: input(11.99, "60"), wantType: cancellation.TypeLate, wantFee: "25", wantReturned: "35", wantUnits: 1},
		{name: "seven hours ahead is late", in: input(7, "60"), wantType: cancellation.TypeLate, wantFee: "25", wantReturned: "35", wantUnits: 1},
		{name: "exactly at late threshold is late", in: input(5, "60"), wantType: cancellation.TypeLate, wantFee: "25", wantReturned: "35", wantUnits: 1},
		{name: "late fee equal to price returns nothing", in: input(7, "25"), wantType: cancellation.TypeLate, wantFee: "25", wantReturned: "0", wantUnits: 0},
		{name: "late fee above price floors at zero", in: input(7, "10"), wantType: cancellation.TypeLate, wantFee: "25", wantReturned: "0", wantUnits: 0},
		{name: "under late threshold is last minute", in: input(4.5, "60"), wantType: cancellation.TypeLastMinute, wantFee: "0", wantReturned: "0", wantUnits: 0},
		{name: "after start is last minute", in: input(-1, "60"), wantType: cancellation.TypeLastMinute, wantFee: "0", wantReturned: "0", wantUnits: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := cancellation.Evaluate(p, tc.in)
			require.NoError(t, err)

			assert.Equal(t, tc.wantType, out.Type)
			assert.True(t, decimal.RequireFromString(tc.wantFee).Equal(out.Fee), "fee %s", out.Fee)
			assert.True(t, decimal.RequireFromString(tc.wantReturned).Equal(out.CreditReturned), "returned %s", out.CreditReturned)
			assert.Equal(t, tc.wantUnits, out.CreditUnitsReturned)
			assert.Equal(t, money.Currency("USD"), out.FeeCurrency)
			assert.False(t, out.GraceRejected)
		})
	}
}

func TestEvaluate_Grace(t *testing.T) {
	p := builder.NewPolicyBuilder().BuildStored()

	t.Run("granted grace overrides the last-minute tier", func(t *testing.T) {
		in := input(2, "60")
		in.GraceRequested = true
		in.GraceGranted = true

		out, err := cancellation.Evaluate(p, in)
		require.NoError(t, err)
		assert.Equal(t, cancellation.TypeGrace, out.Type)
		assert.True(t, out.Fee.IsZero())
		assert.True(t, decimal.NewFromInt(60).Equal(out.CreditReturned))
		assert.Equal(t, 1, out.CreditUnitsReturned)
		assert.False(t, out.GraceRejected)
	})

	t.Run("denied grace falls through to the tiers", func(t *testing.T) {
		in := input(2, "60")
		in.GraceRequested = true

		out, err := cancellation.Evaluate(p, in)
		require.NoError(t, err)
		assert.Equal(t, cancellation.TypeLastMinute, out.Type)
		assert.True(t, out.GraceRejected)
	})

	t.Run("hours are fractional", func(t *testing.T) {
		out, err := cancellation.Evaluate(p, input(7.25, "60"))
		require.NoError(t, err)
		assert.InDelta(t, 7.25, out.HoursBeforeStart, 1e-9)
	})
}

func TestEvaluate_MissingFeeCurrency(t *testing.T) {
	p := builder.NewPolicyBuilder().BuildStored()
	in := input(7, "60")
	in.Currency = "GBP"

	_, err := cancellation.Evaluate(p, in)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrPolicyUnavailable))

	// standard and last-minute never need a fee
	in = input(30, "60")
	in.Currency = "GBP"
	_, err = cancellation.Evaluate(p, in)
	assert.NoError(t, err)
}

func TestNormalizeReason(t *testing.T) {
	r, err := cancellation.NormalizeReason(nil)
	require.NoError(t, err)
	assert.Nil(t, r)

	blank := "   "
	r, err = cancellation.NormalizeReason(&blank)
	require.NoError(t, err)
	assert.Nil(t, r)

	text := "  feeling unwell "
	r, err = cancellation.NormalizeReason(&text)
	require.NoError(t, err)
	assert.Equal(t, "feeling unwell", *r)

	tooLong := strings.Repeat("a", 501)
	_, err = cancellation.NormalizeReason(&tooLong)
	assert.True(t, errs.Is(err, cancellation.ErrReasonTooLong))
}

package money

import (
	"regexp"
	"strings"

	"session-ledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidCurrency = errs.Kind("currency must be a three-letter ISO 4217 code", errs.ErrInvalidArgument)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Minor units kept for every stored amount.
const Scale int32 = 2

// MaxAmount is the largest value a NUMERIC(12,2) ledger column holds.
var MaxAmount = decimal.New(999999999999, -Scale)

type Currency string

func ParseCurrency(s string) (Currency, error) {
	c := strings.ToUpper(strings.TrimSpace(s))
	if !currencyPattern.MatchString(c) {
		return "", ErrInvalidCurrency
	}
	return Currency(c), nil
}

func (c Currency) String() string {
	return string(c)
}

// UnitPrice splits a paid amount evenly over the purchased credits.
func UnitPrice(total decimal.Decimal, units int) decimal.Decimal {
	if units <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(units))).Round(Scale)
}

// SubtractFloor returns a - b, never below zero.
func SubtractFloor(a, b decimal.Decimal) decimal.Decimal {
	d := a.Sub(b)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d.Round(Scale)
}

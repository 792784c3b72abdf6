package credit

import (
	"strings"

	"session-ledger/internal/pkg/money"

	"github.com/shopspring/decimal"
)

type SourceKind string

const (
	SourcePurchase           SourceKind = "purchase"
	SourceCancellationReturn SourceKind = "cancellation_return"
)

func (k SourceKind) IsValid() bool {
	switch k {
	case SourcePurchase, SourceCancellationReturn:
		return true
	default:
		return false
	}
}

// Source records where a grant came from. Reference is unique across the ledger.
type Source struct {
	Kind      SourceKind
	Reference string
	Currency  money.Currency
	Amount    decimal.Decimal
}

const cancellationRefPrefix = "cancellation:"

// Returned credit for a cancelled booking is keyed by the booking so it can only be issued once.
func CancellationReference(bookingID string) string {
	return cancellationRefPrefix + bookingID
}

// IsCancellationReference reports whether ref lies in the namespace kept for returned credit.
func IsCancellationReference(ref string) bool {
	return strings.HasPrefix(ref, cancellationRefPrefix)
}

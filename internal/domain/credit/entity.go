package credit

import (
	"math"
	"strings"
	"time"

	"session-ledger/internal/pkg/errs"
	"session-ledger/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOwner     = errs.Kind("grant owner is required", errs.ErrInvalidArgument)
	ErrInvalidCount     = errs.Kind("credit count must be positive", errs.ErrInvalidArgument)
	ErrNegativeAmount   = errs.Kind("source amount must not be negative", errs.ErrInvalidArgument)
	ErrMissingReference = errs.Kind("source reference is required", errs.ErrInvalidArgument)
	ErrInvalidSource    = errs.Kind("unknown source kind", errs.ErrInvalidArgument)
	ErrInvalidExpiry    = errs.Kind("expiry must be after purchase time", errs.ErrInvalidArgument)
	ErrTooManyCredits   = errs.Kind("credit count exceeds the ledger maximum", errs.ErrInvalidArgument)
	ErrAmountTooLarge   = errs.Kind("source amount exceeds the ledger maximum", errs.ErrInvalidArgument)
	ErrReservedRef      = errs.Kind("source reference is reserved for returned credit", errs.ErrInvalidArgument)
)

// MaxCredits is the largest grant an INTEGER credit column holds.
const MaxCredits = math.MaxInt32

type Grant struct {
	id                    uuid.UUID
	ownerID               uuid.UUID
	sessionTypeID         *uuid.UUID
	initialCredits        int
	creditsRemaining      int
	unitPrice             decimal.Decimal
	purchasedAt           time.Time
	expiresAt             *time.Time
	graceCancellationUsed bool
	source                Source
}

// NewGrant issues count credits. A nil sessionTypeID makes a generic package credit.
func NewGrant(ownerID uuid.UUID, sessionTypeID *uuid.UUID, count int, purchasedAt time.Time, expiresAt *time.Time, source Source) (*Grant, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwner
	}
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	if count > MaxCredits {
		return nil, ErrTooManyCredits
	}
	if !source.Kind.IsValid() {
		return nil, ErrInvalidSource
	}
	if strings.TrimSpace(source.Reference) == "" {
		return nil, ErrMissingReference
	}
	if source.Kind == SourcePurchase && IsCancellationReference(source.Reference) {
		return nil, ErrReservedRef
	}
	if source.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if source.Amount.GreaterThan(money.MaxAmount) {
		return nil, ErrAmountTooLarge
	}
	currency, err := money.ParseCurrency(source.Currency.String())
	if err != nil {
		return nil, err
	}
	source.Currency = currency
	if expiresAt != nil && !expiresAt.After(purchasedAt) {
		return nil, ErrInvalidExpiry
	}

	return &Grant{
		id:               uuid.New(),
		ownerID:          ownerID,
		sessionTypeID:    sessionTypeID,
		initialCredits:   count,
		creditsRemaining: count,
		unitPrice:        money.UnitPrice(source.Amount, count),
		purchasedAt:      purchasedAt.UTC(),
		expiresAt:        expiresAt,
		source:           source,
	}, nil
}

// NewReturnGrant issues the single unit handed back when a booking is cancelled.
// value is what the unit is worth after any fee was deducted.
func NewReturnGrant(consumed *Grant, bookingID uuid.UUID, value decimal.Decimal, now time.Time) (*Grant, error) {
	expiresAt := consumed.expiresAt
	if expiresAt != nil && !expiresAt.After(now) {
		// an already expired window would make the returned unit unusable
		expiresAt = nil
	}
	return NewGrant(consumed.ownerID, consumed.sessionTypeID, 1, now, expiresAt, Source{
		Kind:      SourceCancellationReturn,
		Reference: CancellationReference(bookingID.String()),
		Currency:  consumed.source.Currency,
		Amount:    value,
	})
}

func ReconstructGrant(
	id, ownerID uuid.UUID,
	sessionTypeID *uuid.UUID,
	initialCredits, creditsRemaining int,
	unitPrice decimal.Decimal,
	purchasedAt time.Time,
	expiresAt *time.Time,
	graceCancellationUsed bool,
	source Source,
) *Grant {
	return &Grant{
		id:                    id,
		ownerID:               ownerID,
		sessionTypeID:         sessionTypeID,
		initialCredits:        initialCredits,
		creditsRemaining:      creditsRemaining,
		unitPrice:             unitPrice,
		purchasedAt:           purchasedAt,
		expiresAt:             expiresAt,
		graceCancellationUsed: graceCancellationUsed,
		source:                source,
	}
}

func (g *Grant) ID() uuid.UUID               { return g.id }
func (g *Grant) OwnerID() uuid.UUID          { return g.ownerID }
func (g *Grant) SessionTypeID() *uuid.UUID   { return g.sessionTypeID }
func (g *Grant) InitialCredits() int         { return g.initialCredits }
func (g *Grant) CreditsRemaining() int       { return g.creditsRemaining }
func (g *Grant) UnitPrice() decimal.Decimal  { return g.unitPrice }
func (g *Grant) PurchasedAt() time.Time      { return g.purchasedAt }
func (g *Grant) ExpiresAt() *time.Time       { return g.expiresAt }
func (g *Grant) GraceCancellationUsed() bool { return g.graceCancellationUsed }
func (g *Grant) Source() Source              { return g.source }
func (g *Grant) Currency() money.Currency    { return g.source.Currency }
func (g *Grant) IsGeneric() bool             { return g.sessionTypeID == nil }

// IsExpired treats the expiry instant itself as expired.
func (g *Grant) IsExpired(now time.Time) bool {
	return g.expiresAt != nil && !g.expiresAt.After(now)
}

func (g *Grant) IsRedeemable(now time.Time) bool {
	return g.creditsRemaining > 0 && !g.IsExpired(now)
}

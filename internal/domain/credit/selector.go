package credit

import (
	"bytes"
	"time"

	"session-ledger/internal/pkg/errs"
	"session-ledger/internal/pkg/ptr"

	"github.com/google/uuid"
)

var ErrNoEligibleGrant = errs.Kind("no available credit for this session type/duration", errs.ErrInsufficientCredit)

// SelectGrant picks the grant a booking draws from. Generic package credits are
// spent first, oldest purchase first; type-specific credits are only touched
// when no generic credit is left.
func SelectGrant(grants []*Grant, sessionTypeID *uuid.UUID, now time.Time) (*Grant, error) {
	if g := oldest(grants, now, func(g *Grant) bool { return g.IsGeneric() }); g != nil {
		return g, nil
	}
	if sessionTypeID != nil {
		if g := oldest(grants, now, func(g *Grant) bool {
			return ptr.Equal(g.sessionTypeID, sessionTypeID)
		}); g != nil {
			return g, nil
		}
	}
	return nil, ErrNoEligibleGrant
}

func oldest(grants []*Grant, now time.Time, match func(*Grant) bool) *Grant {
	var best *Grant
	for _, g := range grants {
		if g == nil || !g.IsRedeemable(now) || !match(g) {
			continue
		}
		if best == nil || before(g, best) {
			best = g
		}
	}
	return best
}

func before(a, b *Grant) bool {
	if !a.purchasedAt.Equal(b.purchasedAt) {
		return a.purchasedAt.Before(b.purchasedAt)
	}
	return bytes.Compare(a.id[:], b.id[:]) < 0
}

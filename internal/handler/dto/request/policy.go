package request

import (
	"session-ledger/internal/domain/policy"

	"github.com/shopspring/decimal"
)

type PublishPolicyRequest struct {
	StandardCancellationHours int32                      `json:"standard_cancellation_hours" binding:"min=0"`
	LateCancellationHours     int32                      `json:"late_cancellation_hours" binding:"min=0"`
	LateFees                  map[string]decimal.Decimal `json:"late_fees" binding:"required,min=1"`
	GraceCancellationsAllowed int32                      `json:"grace_cancellations_allowed" binding:"min=0"`
	Text                      string                     `json:"text" binding:"required,max=10000"`
}

func (r *PublishPolicyRequest) ToDomain() policy.Draft {
	return policy.Draft{
		StandardCancellationHours: r.StandardCancellationHours,
		LateCancellationHours:     r.LateCancellationHours,
		LateFees:                  r.LateFees,
		GraceCancellationsAllowed: r.GraceCancellationsAllowed,
		Text:                      r.Text,
	}
}

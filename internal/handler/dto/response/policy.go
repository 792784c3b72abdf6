package response

import (
	"time"

	"session-ledger/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type PolicyResponse struct {
	Version                   int32                      `json:"version"`
	StandardCancellationHours int32                      `json:"standard_cancellation_hours"`
	LateCancellationHours     int32                      `json:"late_cancellation_hours"`
	LateFees                  map[string]decimal.Decimal `json:"late_fees"`
	GraceCancellationsAllowed int32                      `json:"grace_cancellations_allowed"`
	IsActive                  bool                       `json:"is_active"`
	Text                      string                     `json:"text"`
	CreatedAt                 time.Time                  `json:"created_at"`
}

func FromPolicyView(v *queries.PolicyView) (*PolicyResponse, error) {
	var res PolicyResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromPolicyViews(views []*queries.PolicyView) ([]*PolicyResponse, error) {
	res := make([]*PolicyResponse, 0, len(views))
	if err := copier.Copy(&res, views); err != nil {
		return nil, err
	}
	return res, nil
}

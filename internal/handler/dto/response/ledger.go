package response

import (
	"time"

	"session-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type GrantResponse struct {
	ID                    uuid.UUID       `json:"id"`
	SessionTypeID         *uuid.UUID      `json:"session_type_id,omitempty"`
	InitialCredits        int             `json:"initial_credits"`
	CreditsRemaining      int             `json:"credits_remaining"`
	UnitPrice             decimal.Decimal `json:"unit_price"`
	Currency              string          `json:"currency"`
	SourceKind            string          `json:"source_kind"`
	SourceReference       string          `json:"source_reference"`
	PurchasedAt           time.Time       `json:"purchased_at"`
	ExpiresAt             *time.Time      `json:"expires_at,omitempty"`
	GraceCancellationUsed bool            `json:"grace_cancellation_used"`
	Redeemable            bool            `json:"redeemable"`
}

type BalanceResponse struct {
	ClientID               uuid.UUID        `json:"client_id"`
	Grants                 []*GrantResponse `json:"grants"`
	TotalRemaining         int              `json:"total_remaining"`
	RedeemableRemaining    int              `json:"redeemable_remaining"`
	GraceCancellationsUsed int              `json:"grace_cancellations_used"`
	HasUsedGrace           bool             `json:"has_used_grace"`
}

func FromBalanceView(v *queries.BalanceView) (*BalanceResponse, error) {
	res := BalanceResponse{Grants: []*GrantResponse{}}
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	if res.Grants == nil {
		res.Grants = []*GrantResponse{}
	}
	return &res, nil
}

//go:build unit

package response_test

import (
	"testing"
	"time"

	"session-ledger/internal/handler/dto/response"
	"session-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestFromBookingView(t *testing.T) {
	version := int32(3)
	view := &queries.BookingView{
		ID:               uuid.New(),
		ClientID:         uuid.New(),
		PractitionerID:   uuid.New(),
		PractitionerName: "Aiko",
		ScheduledAt:      at.Add(48 * time.Hour),
		DurationMinutes:  60,
		Status:           "cancelled",
		PolicyVersion:    &version,
		CreditGrantID:    uuid.New(),
		RoomName:         "room-1",
		Cancellation: &queries.CancellationSummary{
			Type:           "late",
			CancelledAt:    at,
			FeeCharged:     decimal.RequireFromString("25"),
			CreditReturned: decimal.RequireFromString("35"),
			Currency:       "USD",
		},
		CreatedAt: at,
		UpdatedAt: at,
	}

	res, err := response.FromBookingView(view)
	require.NoError(t, err)
	assert.Equal(t, view.ID, res.ID)
	assert.Equal(t, "Aiko", res.PractitionerName)
	assert.Equal(t, int32(60), res.DurationMinutes)
	assert.Equal(t, &version, res.PolicyVersion)
	require.NotNil(t, res.Cancellation)
	assert.Equal(t, "late", res.Cancellation.Type)
	assert.True(t, res.Cancellation.CreditReturned.Equal(decimal.RequireFromString("35")))

	t.Run("scheduled booking has no cancellation", func(t *testing.T) {
		view.Cancellation = nil
		res, err := response.FromBookingView(view)
		require.NoError(t, err)
		assert.Nil(t, res.Cancellation)
	})
}

func TestFromBalanceView(t *testing.T) {
	expires := at.AddDate(1, 0, 0)
	view := &queries.BalanceView{
		ClientID: uuid.New(),
		Grants: []*queries.GrantView{
			{
				ID:               uuid.New(),
				InitialCredits:   10,
				CreditsRemaining: 4,
				UnitPrice:        decimal.RequireFromString("50"),
				Currency:         "USD",
				SourceKind:       "purchase",
				SourceReference:  "pi_1",
				PurchasedAt:      at,
				ExpiresAt:        &expires,
				Redeemable:       true,
			},
		},
		TotalRemaining:      4,
		RedeemableRemaining: 4,
	}

	res, err := response.FromBalanceView(view)
	require.NoError(t, err)
	require.Len(t, res.Grants, 1)
	assert.Equal(t, view.Grants[0].ID, res.Grants[0].ID)
	assert.Equal(t, 4, res.Grants[0].CreditsRemaining)
	assert.Equal(t, &expires, res.Grants[0].ExpiresAt)
	assert.Equal(t, 4, res.RedeemableRemaining)

	t.Run("empty ledger renders an empty list", func(t *testing.T) {
		res, err := response.FromBalanceView(&queries.BalanceView{ClientID: uuid.New()})
		require.NoError(t, err)
		assert.NotNil(t, res.Grants)
		assert.Empty(t, res.Grants)
	})
}

func TestFromPolicyViews(t *testing.T) {
	views := []*queries.PolicyView{
		{Version: 2, StandardCancellationHours: 24, LateCancellationHours: 6, IsActive: true, Text: "v2",
			LateFees: map[string]decimal.Decimal{"USD": decimal.RequireFromString("30")}},
		{Version: 1, StandardCancellationHours: 12, LateCancellationHours: 4, Text: "v1",
			LateFees: map[string]decimal.Decimal{"USD": decimal.RequireFromString("25")}},
	}

	res, err := response.FromPolicyViews(views)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, int32(2), res[0].Version)
	assert.True(t, res[0].IsActive)
	assert.Equal(t, "30", res[0].LateFees["USD"].String())
	assert.Equal(t, int32(1), res[1].Version)
	assert.False(t, res[1].IsActive)
}

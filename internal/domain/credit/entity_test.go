//go:build unit

package credit_test

import (
	"testing"
	"time"

	"session-ledger/internal/domain/credit"
	"session-ledger/internal/pkg/errs"
	"session-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.GrantBuilder)
	errIs  error
}

func TestNewGrant(t *testing.T) {
	t.Run("generic package grant", func(t *testing.T) {
		actual, err := builder.NewGrantBuilder().WithCredits(10, 10).WithAmount("500", "usd").BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsGeneric())
		assert.Equal(t, 10, actual.InitialCredits())
		assert.Equal(t, 10, actual.CreditsRemaining())
		assert.True(t, decimal.NewFromInt(50).Equal(actual.UnitPrice()))
		assert.False(t, actual.GraceCancellationUsed())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single type-specific credit OK",
				mutate: func(b *builder.GrantBuilder) { b.WithSessionType(uuid.New()).WithCredits(1, 1) },
			},
			{
				name:   "zero amount OK",
				mutate: func(b *builder.GrantBuilder) { b.WithAmount("0", "USD") },
			},
			{
				name:   "zero count NG",
				mutate: func(b *builder.GrantBuilder) { b.WithCredits(0, 0) },
				errIs:  credit.ErrInvalidCount,
			},
			{
				name:   "negative count NG",
				mutate: func(b *builder.GrantBuilder) { b.WithCredits(-1, 0) },
				errIs:  credit.ErrInvalidCount,
			},
			{
				name:   "count at ledger maximum OK",
				mutate: func(b *builder.GrantBuilder) { b.WithCredits(credit.MaxCredits, credit.MaxCredits) },
			},
			{
				name:   "count above ledger maximum NG",
				mutate: func(b *builder.GrantBuilder) { b.WithCredits(5_000_000_000, 5_000_000_000) },
				errIs:  credit.ErrTooManyCredits,
			},
			{
				name:   "amount at column maximum OK",
				mutate: func(b *builder.GrantBuilder) { b.WithAmount("9999999999.99", "USD") },
			},
			{
				name:   "amount above column maximum NG",
				mutate: func(b *builder.GrantBuilder) { b.WithAmount("10000000000", "USD") },
				errIs:  credit.ErrAmountTooLarge,
			},
			{
				name:   "missing owner NG",
				mutate: func(b *builder.GrantBuilder) { b.WithOwner(uuid.Nil) },
				errIs:  credit.ErrInvalidOwner,
			},
			{
				name:   "negative amount NG",
				mutate: func(b *builder.GrantBuilder) { b.WithAmount("-1", "USD") },
				errIs:  credit.ErrNegativeAmount,
			},
			{
				name:   "blank reference NG",
				mutate: func(b *builder.GrantBuilder) { b.Reference = "  " },
				errIs:  credit.ErrMissingReference,
			},
			{
				name:   "purchase under the cancellation namespace NG",
				mutate: func(b *builder.GrantBuilder) { b.Reference = credit.CancellationReference(uuid.NewString()) },
				errIs:  credit.ErrReservedRef,
			},
			{
				name:   "unknown source NG",
				mutate: func(b *builder.GrantBuilder) { b.Kind = "gift" },
				errIs:  credit.ErrInvalidSource,
			},
			{
				name:   "bad currency NG",
				mutate: func(b *builder.GrantBuilder) { b.Currency = "dollars" },
				errIs:  errs.ErrInvalidArgument,
			},
			{
				name: "expiry before purchase NG",
				mutate: func(b *builder.GrantBuilder) {
					b.ExpiringAt(b.PurchasedAt.Add(-time.Hour))
				},
				errIs: credit.ErrInvalidExpiry,
			},
		})
	})
}

func TestGrant_IsRedeemable(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		grant *credit.Grant
		want  bool
	}{
		{
			name:  "remaining without expiry",
			grant: builder.NewGrantBuilder().WithCredits(3, 1).BuildStored(),
			want:  true,
		},
		{
			name:  "exhausted",
			grant: builder.NewGrantBuilder().WithCredits(3, 0).BuildStored(),
			want:  false,
		},
		{
			name:  "expires in the future",
			grant: builder.NewGrantBuilder().ExpiringAt(now.Add(time.Minute)).BuildStored(),
			want:  true,
		},
		{
			name:  "expires exactly now",
			grant: builder.NewGrantBuilder().ExpiringAt(now).BuildStored(),
			want:  false,
		},
		{
			name:  "already expired",
			grant: builder.NewGrantBuilder().ExpiringAt(now.Add(-time.Minute)).BuildStored(),
			want:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.grant.IsRedeemable(now))
		})
	}
}

func TestNewReturnGrant(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	bookingID := uuid.New()
	sessionType := uuid.New()

	t.Run("inherits owner, session type, currency and expiry", func(t *testing.T) {
		expiry := now.Add(30 * 24 * time.Hour)
		consumed := builder.NewGrantBuilder().WithSessionType(sessionType).WithAmount("60", "EUR").
			WithCredits(1, 0).ExpiringAt(expiry).BuildStored()

		returned, err := credit.NewReturnGrant(consumed, bookingID, decimal.NewFromInt(35), now)
		require.NoError(t, err)

		assert.Equal(t, consumed.OwnerID(), returned.OwnerID())
		assert.Equal(t, &sessionType, returned.SessionTypeID())
		assert.Equal(t, 1, returned.CreditsRemaining())
		assert.True(t, decimal.NewFromInt(35).Equal(returned.UnitPrice()))
		assert.Equal(t, "EUR", returned.Currency().String())
		assert.Equal(t, &expiry, returned.ExpiresAt())
		assert.Equal(t, credit.SourceCancellationReturn, returned.Source().Kind)
		assert.Equal(t, "cancellation:"+bookingID.String(), returned.Source().Reference)
	})

	t.Run("drops an expiry that has already passed", func(t *testing.T) {
		consumed := builder.NewGrantBuilder().ExpiringAt(now.Add(-time.Hour)).BuildStored()

		returned, err := credit.NewReturnGrant(consumed, bookingID, consumed.UnitPrice(), now)
		require.NoError(t, err)
		assert.Nil(t, returned.ExpiresAt())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewGrantBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				assert.True(t, errs.Is(err, c.errIs), "expected %v, got %v", c.errIs, err)
			}
		})
	}
}

//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"session-ledger/internal/domain/policy"
	"session-ledger/internal/infra"
	"session-ledger/internal/pkg/clock"
	"session-ledger/internal/pkg/errs"
	"session-ledger/internal/pkg/money"
	"session-ledger/internal/usecase/commands"
	"session-ledger/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPolicyCommands_Publish(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("stored version is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newUoWHarness(ctrl)
		uc := commands.NewPolicyUseCase(h.uow, clock.NewMockClock(now))

		draft := builder.NewPolicyBuilder().WithFee("EUR", "20").Draft()
		h.expectTx()
		h.policies.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *policy.Policy) (*policy.Policy, error) {
				assert.Equal(t, int32(12), p.StandardCancellationHours())
				assert.Equal(t, now, p.CreatedAt())
				return policy.ReconstructPolicy(4,
					p.StandardCancellationHours(), p.LateCancellationHours(),
					p.LateFees(), p.GraceCancellationsAllowed(),
					true, p.Text(), p.CreatedAt()), nil
			})

		published, err := uc.Publish(context.Background(), draft)
		require.NoError(t, err)
		assert.Equal(t, int32(4), published.Version())
		assert.True(t, published.IsActive())

		fee, err := published.LateFee(money.Currency("EUR"))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(20).Equal(fee))
	})

	t.Run("invalid draft never opens a transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newUoWHarness(ctrl)
		uc := commands.NewPolicyUseCase(h.uow, clock.NewMockClock(now))

		draft := builder.NewPolicyBuilder().WithThresholds(4, 8).Draft()

		_, err := uc.Publish(context.Background(), draft)
		assert.True(t, errs.Is(err, policy.ErrThresholdOrder))
		assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
	})

	t.Run("store failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newUoWHarness(ctrl)
		uc := commands.NewPolicyUseCase(h.uow, clock.NewMockClock(now))

		h.expectTx()
		h.policies.EXPECT().Publish(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("publish policy", errors.New("lock timeout")))

		published, err := uc.Publish(context.Background(), builder.NewPolicyBuilder().Draft())
		assert.Nil(t, published)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

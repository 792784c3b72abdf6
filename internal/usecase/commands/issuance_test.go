//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"session-ledger/internal/domain/credit"
	"session-ledger/internal/infra"
	"session-ledger/internal/pkg/clock"
	"session-ledger/internal/pkg/config"
	"session-ledger/internal/pkg/errs"
	"session-ledger/internal/pkg/money"
	"session-ledger/internal/pkg/ptr"
	"session-ledger/internal/usecase/commands"
	"session-ledger/internal/usecase/shared"
	"session-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IssuanceCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	h    *uowHarness
	cfg  config.Config
	now  time.Time
}

func (s *IssuanceCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.h = newUoWHarness(s.ctrl)
	s.cfg = config.NewTestConfig()
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *IssuanceCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestIssuanceCommandsSuite(t *testing.T) {
	suite.Run(t, new(IssuanceCommandsTestSuite))
}

func (s *IssuanceCommandsTestSuite) useCase() commands.IssuanceCommands {
	return commands.NewIssuanceUseCase(s.h.uow, clock.NewMockClock(s.now), s.cfg)
}

func packageEvent(clientID uuid.UUID, size int) commands.PurchaseEvent {
	return commands.PurchaseEvent{
		PurchaseReference: "pi_" + uuid.NewString(),
		ClientID:          clientID,
		PackageSize:       &size,
		Amount:            decimal.NewFromInt(500),
		Currency:          "USD",
		CompletedAt:       time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC),
	}
}

// ================================================================================
// OnPurchaseCompleted: fresh purchases
// ================================================================================

func (s *IssuanceCommandsTestSuite) TestOnPurchaseCompleted_Package() {
	clientID := uuid.New()
	ev := packageEvent(clientID, 10)

	s.h.expectTx()
	s.h.purchases.EXPECT().MarkProcessed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p shared.PurchaseSnapshot) (bool, error) {
			s.Equal(ev.PurchaseReference, p.Reference)
			s.Equal(clientID, p.ClientID)
			s.Equal(s.now, p.ProcessedAt)
			return true, nil
		})
	s.h.clients.EXPECT().Ensure(gomock.Any(), clientID).Return(nil)

	var created *credit.Grant
	s.h.grants.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *credit.Grant) error {
			created = g
			return nil
		})

	res, err := s.useCase().OnPurchaseCompleted(context.Background(), ev)
	s.Require().NoError(err)
	s.False(res.Replayed)
	s.Equal(created, res.Grant)

	g := res.Grant
	s.True(g.IsGeneric())
	s.Equal(10, g.InitialCredits())
	s.Equal(10, g.CreditsRemaining())
	s.True(decimal.NewFromInt(50).Equal(g.UnitPrice()), "got %s", g.UnitPrice())
	s.Equal(money.Currency("USD"), g.Currency())
	s.Equal(ev.CompletedAt, g.PurchasedAt())
	s.Nil(g.ExpiresAt())
	s.Equal(credit.SourcePurchase, g.Source().Kind)
}

func (s *IssuanceCommandsTestSuite) TestOnPurchaseCompleted_SingleSession() {
	clientID := uuid.New()
	sessionType := uuid.New()
	ev := commands.PurchaseEvent{
		PurchaseReference: "  pi_single  ",
		ClientID:          clientID,
		SessionTypeID:     &sessionType,
		Amount:            decimal.RequireFromString("80.00"),
		Currency:          "EUR",
	}

	s.h.expectTx()
	s.h.purchases.EXPECT().MarkProcessed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p shared.PurchaseSnapshot) (bool, error) {
			s.Equal("pi_single", p.Reference)
			return true, nil
		})
	s.h.clients.EXPECT().Ensure(gomock.Any(), clientID).Return(nil)
	s.h.grants.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.useCase().OnPurchaseCompleted(context.Background(), ev)
	s.Require().NoError(err)

	g := res.Grant
	s.False(g.IsGeneric())
	s.Equal(sessionType, *g.SessionTypeID())
	s.Equal(1, g.InitialCredits())
	s.Equal(s.now, g.PurchasedAt(), "zero completion time falls back to now")
}

func (s *IssuanceCommandsTestSuite) TestOnPurchaseCompleted_DefaultExpiry() {
	s.cfg.Ledger.DefaultCreditExpiry = 365 * 24 * time.Hour
	explicit := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	sessionType := uuid.New()

	testCases := []struct {
		name   string
		event  func() commands.PurchaseEvent
		expect *time.Time
	}{
		{
			name: "package gets the configured expiry",
			event: func() commands.PurchaseEvent {
				return packageEvent(uuid.New(), 5)
			},
			expect: ptr.Of(time.Date(2027, 2, 28, 9, 0, 0, 0, time.UTC)),
		},
		{
			name: "explicit expiry wins",
			event: func() commands.PurchaseEvent {
				ev := packageEvent(uuid.New(), 5)
				ev.ExpiresAt = &explicit
				return ev
			},
			expect: &explicit,
		},
		{
			name: "single sessions do not expire by default",
			event: func() commands.PurchaseEvent {
				ev := packageEvent(uuid.New(), 1)
				ev.PackageSize = nil
				ev.SessionTypeID = &sessionType
				return ev
			},
			expect: nil,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.h.expectTx()
			s.h.purchases.EXPECT().MarkProcessed(gomock.Any(), gomock.Any()).Return(true, nil)
			s.h.clients.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return(nil)
			s.h.grants.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

			res, err := s.useCase().OnPurchaseCompleted(context.Background(), tc.event())
			s.Require().NoError(err)
			if tc.expect == nil {
				s.Nil(res.Grant.ExpiresAt())
				return
			}
			s.Require().NotNil(res.Grant.ExpiresAt())
			s.True(tc.expect.Equal(*res.Grant.ExpiresAt()), "got %s", res.Grant.ExpiresAt())
		})
	}
}

// ================================================================================
// OnPurchaseCompleted: replays and conflicts
// ================================================================================

func (s *IssuanceCommandsTestSuite) TestOnPurchaseCompleted_Replay() {
	clientID := uuid.New()
	ev := packageEvent(clientID, 10)
	prior := builder.NewGrantBuilder().WithOwner(clientID).WithCredits(10, 7).BuildStored()

	s.h.expectTx()
	s.h.purchases.EXPECT().MarkProcessed(gomock.Any(), gomock.Any()).Return(false, nil)
	s.h.reads.EXPECT().ProcessedPurchase(gomock.Any(), ev.PurchaseReference).
		Return(&shared.PurchaseSnapshot{Reference: ev.PurchaseReference, ClientID: clientID, GrantID: prior.ID()}, nil)
	s.h.reads.EXPECT().GrantByID(gomock.Any(), prior.ID()).Return(prior, nil)
	s.h.clients.EXPECT().Ensure(gomock.Any(), gomock.Any()).Times(0)
	s.h.grants.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	res, err := s.useCase().OnPurchaseCompleted(context.Background(), ev)
	s.Require().NoError(err)
	s.True(res.Replayed)
	s.Equal(prior.ID(), res.Grant.ID())
	s.Equal(7, res.Grant.CreditsRemaining())
}

func (s *IssuanceCommandsTestSuite) TestOnPurchaseCompleted_GrantConflict() {
	ev := packageEvent(uuid.New(), 3)

	s.h.expectTx()
	s.h.purchases.EXPECT().MarkProcessed(gomock.Any(), gomock.Any()).Return(true, nil)
	s.h.clients.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return(nil)
	s.h.grants.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("insert grant", &pgconn.PgError{Code: "23505"}))

	_, err := s.useCase().OnPurchaseCompleted(context.Background(), ev)
	s.True(errs.Is(err, commands.ErrPurchaseConflict))
	s.True(errs.Is(err, errs.ErrInvalidState))
}

func (s *IssuanceCommandsTestSuite) TestOnPurchaseCompleted_StoreFailure() {
	ev := packageEvent(uuid.New(), 3)

	s.h.expectTx()
	s.h.purchases.EXPECT().MarkProcessed(gomock.Any(), gomock.Any()).
		Return(false, infra.WrapRepoErr("mark processed", errors.New("connection reset")))

	res, err := s.useCase().OnPurchaseCompleted(context.Background(), ev)
	s.Nil(res)
	s.True(infra.IsKind(err, infra.KindDBFailure))
	s.Nil(errs.KindOf(err))
}

func (s *IssuanceCommandsTestSuite) TestOnPurchaseCompleted_DefaultCurrency() {
	s.cfg.Ledger.DefaultCurrency = "EUR"
	ev := packageEvent(uuid.New(), 4)
	ev.Currency = ""

	s.h.expectTx()
	s.h.purchases.EXPECT().MarkProcessed(gomock.Any(), gomock.Any()).Return(true, nil)
	s.h.clients.EXPECT().Ensure(gomock.Any(), ev.ClientID).Return(nil)
	s.h.grants.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.useCase().OnPurchaseCompleted(context.Background(), ev)
	s.Require().NoError(err)
	s.Equal(money.Currency("EUR"), res.Grant.Currency())
}

// ================================================================================
// OnPurchaseCompleted: malformed events
// ================================================================================

func (s *IssuanceCommandsTestSuite) TestOnPurchaseCompleted_Invalid() {
	zero := 0
	oversized := credit.MaxCredits + 1
	sessionType := uuid.New()

	testCases := []struct {
		name   string
		mutate func(*commands.PurchaseEvent)
		errIs  error
	}{
		{
			name:   "zero package size",
			mutate: func(ev *commands.PurchaseEvent) { ev.PackageSize = &zero },
			errIs:  commands.ErrInvalidPackageSize,
		},
		{
			name: "no product",
			mutate: func(ev *commands.PurchaseEvent) {
				ev.PackageSize = nil
				ev.SessionTypeID = nil
			},
			errIs: commands.ErrMissingProduct,
		},
		{
			name:   "missing client",
			mutate: func(ev *commands.PurchaseEvent) { ev.ClientID = uuid.Nil },
			errIs:  credit.ErrInvalidOwner,
		},
		{
			name:   "blank reference",
			mutate: func(ev *commands.PurchaseEvent) { ev.PurchaseReference = "   " },
			errIs:  credit.ErrMissingReference,
		},
		{
			name:   "negative amount",
			mutate: func(ev *commands.PurchaseEvent) { ev.Amount = decimal.NewFromInt(-1) },
			errIs:  credit.ErrNegativeAmount,
		},
		{
			name:   "bad currency",
			mutate: func(ev *commands.PurchaseEvent) { ev.Currency = "US" },
			errIs:  money.ErrInvalidCurrency,
		},
		{
			name:   "package larger than the credit column",
			mutate: func(ev *commands.PurchaseEvent) { ev.PackageSize = &oversized },
			errIs:  credit.ErrTooManyCredits,
		},
		{
			name:   "amount larger than the amount column",
			mutate: func(ev *commands.PurchaseEvent) { ev.Amount = decimal.RequireFromString("10000000000.00") },
			errIs:  credit.ErrAmountTooLarge,
		},
		{
			name:   "reference in the returned-credit namespace",
			mutate: func(ev *commands.PurchaseEvent) { ev.PurchaseReference = credit.CancellationReference(uuid.NewString()) },
			errIs:  credit.ErrReservedRef,
		},
		{
			name: "package with a session type still needs a positive size",
			mutate: func(ev *commands.PurchaseEvent) {
				ev.PackageSize = &zero
				ev.SessionTypeID = &sessionType
			},
			errIs: commands.ErrInvalidPackageSize,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			ev := packageEvent(uuid.New(), 5)
			tc.mutate(&ev)

			res, err := s.useCase().OnPurchaseCompleted(context.Background(), ev)
			s.Nil(res)
			s.True(errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
			s.True(errs.Is(err, errs.ErrInvalidArgument))
		})
	}
}

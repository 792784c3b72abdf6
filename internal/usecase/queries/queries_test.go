//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"session-ledger/internal/domain/credit"
	"session-ledger/internal/domain/policy"
	"session-ledger/internal/domain/user"
	"session-ledger/internal/infra"
	"session-ledger/internal/pkg/clock"
	"session-ledger/internal/pkg/errs"
	"session-ledger/internal/usecase/queries"
	"session-ledger/tests/common/builder"
	queriesmock "session-ledger/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func principal(t *testing.T, id uuid.UUID, role user.Role) user.Principal {
	t.Helper()
	p, err := user.NewPrincipal(id, role)
	require.NoError(t, err)
	return p
}

// ================================================================================
// LedgerQueries
// ================================================================================

func TestLedgerQueries_Balances(t *testing.T) {
	clientID := uuid.New()
	active := builder.NewGrantBuilder().WithOwner(clientID).WithCredits(10, 4).BuildStored()
	expired := builder.NewGrantBuilder().WithOwner(clientID).WithCredits(5, 2).
		ExpiringAt(now.Add(-time.Hour)).BuildStored()
	spent := builder.NewGrantBuilder().WithOwner(clientID).WithCredits(1, 0).BuildStored()

	t.Run("owner sees every grant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockLedgerReadStore(ctrl)
		store.EXPECT().GrantsByOwner(gomock.Any(), clientID).Return([]*credit.Grant{active, expired, spent}, nil)
		store.EXPECT().GraceCancellationsUsed(gomock.Any(), clientID).Return(1, nil)

		q := queries.NewLedgerQueries(store, clock.NewMockClock(now))
		view, err := q.Balances(context.Background(), principal(t, clientID, user.RoleClient), clientID)
		require.NoError(t, err)

		assert.Len(t, view.Grants, 3)
		assert.Equal(t, 6, view.TotalRemaining)
		assert.Equal(t, 4, view.RedeemableRemaining)
		assert.Equal(t, 1, view.GraceCancellationsUsed)
		assert.True(t, view.HasUsedGrace)
		assert.True(t, view.Grants[0].Redeemable)
		assert.False(t, view.Grants[1].Redeemable)
		assert.False(t, view.Grants[2].Redeemable)
		assert.Equal(t, "purchase", view.Grants[0].SourceKind)
	})

	t.Run("admin reads any ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockLedgerReadStore(ctrl)
		store.EXPECT().GrantsByOwner(gomock.Any(), clientID).Return(nil, nil)
		store.EXPECT().GraceCancellationsUsed(gomock.Any(), clientID).Return(0, nil)

		q := queries.NewLedgerQueries(store, clock.NewMockClock(now))
		view, err := q.Balances(context.Background(), principal(t, uuid.New(), user.RoleAdmin), clientID)
		require.NoError(t, err)
		assert.Empty(t, view.Grants)
		assert.False(t, view.HasUsedGrace)
	})

	t.Run("other clients are forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockLedgerReadStore(ctrl)

		q := queries.NewLedgerQueries(store, clock.NewMockClock(now))
		_, err := q.Balances(context.Background(), principal(t, uuid.New(), user.RoleClient), clientID)
		assert.True(t, errs.Is(err, queries.ErrLedgerAccess))
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})
}

// ================================================================================
// BookingQueries
// ================================================================================

func TestBookingQueries_Get(t *testing.T) {
	clientID := uuid.New()
	practitionerID := uuid.New()
	view := &queries.BookingView{ID: uuid.New(), ClientID: clientID, PractitionerID: practitionerID}

	testCases := []struct {
		name   string
		actor  user.Principal
		stored *queries.BookingView
		err    error
		errIs  error
	}{
		{name: "owner", actor: principal(t, clientID, user.RoleClient), stored: view},
		{name: "practitioner", actor: principal(t, practitionerID, user.RolePractitioner), stored: view},
		{name: "admin", actor: principal(t, uuid.New(), user.RoleAdmin), stored: view},
		{
			name:   "other client",
			actor:  principal(t, uuid.New(), user.RoleClient),
			stored: view,
			errIs:  queries.ErrBookingNotFound,
		},
		{
			name:  "missing",
			actor: principal(t, clientID, user.RoleClient),
			err:   infra.WrapRepoErr("booking not found", nil, infra.KindNotFound),
			errIs: queries.ErrBookingNotFound,
		},
		{
			name:  "store failure",
			actor: principal(t, clientID, user.RoleClient),
			err:   infra.WrapRepoErr("find booking", errors.New("timeout")),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			store.EXPECT().FindView(gomock.Any(), view.ID).Return(tc.stored, tc.err)

			got, err := queries.NewBookingQueries(store).Get(context.Background(), tc.actor, view.ID)
			switch {
			case tc.errIs != nil:
				assert.Nil(t, got)
				assert.True(t, errs.Is(err, tc.errIs))
				assert.True(t, errs.Is(err, errs.ErrNotFound))
			case tc.err != nil:
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			default:
				require.NoError(t, err)
				assert.Equal(t, view, got)
			}
		})
	}
}

// ================================================================================
// PolicyQueries
// ================================================================================

func TestPolicyQueries(t *testing.T) {
	t.Run("active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPolicyReadStore(ctrl)
		store.EXPECT().FindActive(gomock.Any()).Return(builder.NewPolicyBuilder().WithFee("EUR", "20").BuildStored(), nil)

		view, err := queries.NewPolicyQueries(store).Active(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(1), view.Version)
		assert.Equal(t, int32(12), view.StandardCancellationHours)
		assert.Len(t, view.LateFees, 2)
		assert.Equal(t, "25", view.LateFees["USD"].String())
	})

	t.Run("none active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPolicyReadStore(ctrl)
		store.EXPECT().FindActive(gomock.Any()).Return(nil, infra.WrapRepoErr("no active policy", nil, infra.KindNotFound))

		_, err := queries.NewPolicyQueries(store).Active(context.Background())
		assert.True(t, errs.Is(err, queries.ErrNoActivePolicy))
	})

	t.Run("versions keep store order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPolicyReadStore(ctrl)
		v2 := builder.NewPolicyBuilder().With(func(b *builder.PolicyBuilder) { b.Version = 2 }).BuildStored()
		v1 := builder.NewPolicyBuilder().BuildStored()
		store.EXPECT().List(gomock.Any()).Return([]*policy.Policy{v2, v1}, nil)

		views, err := queries.NewPolicyQueries(store).Versions(context.Background())
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, int32(2), views[0].Version)
		assert.Equal(t, int32(1), views[1].Version)
	})
}

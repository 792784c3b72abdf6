//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"session-ledger/internal/domain/user"
	"session-ledger/internal/handler/api"
	resdto "session-ledger/internal/handler/dto/response"
	"session-ledger/internal/usecase/queries"
	"session-ledger/tests/common/httptest"
	queriesmock "session-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLedgerHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	callerID := uuid.New()

	setup := func(t *testing.T) (*gin.Engine, *queriesmock.MockLedgerQueries) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockLedgerQueries(ctrl)
		h := api.NewLedgerHandler(q)
		r := gin.New()
		r.GET("/ledger/balances", fakeAuth(callerID), h.MyBalances)
		r.GET("/admin/clients/:id/balances", fakeAuth(callerID), h.ClientBalances)
		return r, q
	}

	t.Run("my balances use the caller id", func(t *testing.T) {
		r, q := setup(t)
		view := &queries.BalanceView{
			ClientID: callerID,
			Grants: []*queries.GrantView{
				{ID: uuid.New(), InitialCredits: 10, CreditsRemaining: 3, UnitPrice: decimal.NewFromInt(50), Currency: "USD", Redeemable: true},
			},
			TotalRemaining:      3,
			RedeemableRemaining: 3,
		}
		q.EXPECT().Balances(gomock.Any(), gomock.Any(), callerID).
			DoAndReturn(func(_ any, actor user.Principal, _ uuid.UUID) (*queries.BalanceView, error) {
				assert.Equal(t, user.RoleClient, actor.Role())
				return view, nil
			})

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/ledger/balances", nil, "client")

		var body resdto.BalanceResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		require.Len(t, body.Grants, 1)
		assert.Equal(t, 3, body.RedeemableRemaining)
		assert.Equal(t, "50", body.Grants[0].UnitPrice.String())
	})

	t.Run("admin reads a client ledger", func(t *testing.T) {
		r, q := setup(t)
		clientID := uuid.New()
		q.EXPECT().Balances(gomock.Any(), gomock.Any(), clientID).Return(&queries.BalanceView{ClientID: clientID}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin/clients/"+clientID.String()+"/balances", nil, "admin")

		var body resdto.BalanceResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, clientID, body.ClientID)
		assert.NotNil(t, body.Grants)
	})

	t.Run("forbidden ledger", func(t *testing.T) {
		r, q := setup(t)
		clientID := uuid.New()
		q.EXPECT().Balances(gomock.Any(), gomock.Any(), clientID).Return(nil, queries.ErrLedgerAccess)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin/clients/"+clientID.String()+"/balances", nil, "client")
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "")
	})

	t.Run("malformed client id", func(t *testing.T) {
		r, _ := setup(t)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin/clients/x/balances", nil, "admin")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid id")
	})
}

package api

import (
	"net/http"

	resdto "session-ledger/internal/handler/dto/response"
	"session-ledger/internal/handler/httperr"
	"session-ledger/internal/handler/middleware"
	"session-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LedgerHandler struct {
	q queries.LedgerQueries
}

func NewLedgerHandler(q queries.LedgerQueries) *LedgerHandler {
	return &LedgerHandler{q: q}
}

// @Summary My balances
// @Description List the caller's credit grants with totals
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BalanceResponse
// @Failure 401 {object} httperr.Response
// @Router /ledger/balances [get]
func (h *LedgerHandler) MyBalances(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	h.respond(c, actor.UserID())
}

// @Summary Client balances
// @Description List a client's credit grants with totals
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/clients/{id}/balances [get]
func (h *LedgerHandler) ClientBalances(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	h.respond(c, clientID)
}

func (h *LedgerHandler) respond(c *gin.Context, clientID uuid.UUID) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	view, err := h.q.Balances(c.Request.Context(), actor, clientID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBalanceView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"

	"session-ledger/internal/handler/httperr"
	"session-ledger/internal/infra/messaging"
	"session-ledger/internal/pkg/config"
	"session-ledger/internal/pkg/errs"
	"session-ledger/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const HeaderSignature = "X-Signature"

var errBadSignature = errs.New("webhook signature mismatch")

type WebhookHandler struct {
	issuance commands.IssuanceCommands
	secret   []byte
}

func NewWebhookHandler(issuance commands.IssuanceCommands, cfg config.Config) *WebhookHandler {
	return &WebhookHandler{issuance: issuance, secret: []byte(cfg.Webhook.Secret)}
}

type PurchaseAck struct {
	GrantID  string `json:"grant_id"`
	Replayed bool   `json:"replayed"`
}

// @Summary Purchase completed
// @Description Issue credits for a completed purchase. Replays return the original grant.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Signature header string true "hex HMAC-SHA256 of the body"
// @Param request body messaging.PurchaseMessage true "Purchase"
// @Success 200 {object} api.PurchaseAck
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /webhooks/purchases [post]
func (h *WebhookHandler) PurchaseCompleted(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if !h.verify(body, c.GetHeader(HeaderSignature)) {
		slog.Warn("rejected purchase webhook", "client_ip", c.ClientIP())
		httperr.AbortWithError(c, http.StatusUnauthorized, errBadSignature, "Invalid signature", nil)
		return
	}

	ev, err := messaging.DecodePurchase(body)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	result, err := h.issuance.OnPurchaseCompleted(c.Request.Context(), ev)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, PurchaseAck{GrantID: result.Grant.ID().String(), Replayed: result.Replayed})
}

func (h *WebhookHandler) verify(body []byte, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil || len(got) == 0 {
		return false
	}
	return hmac.Equal(got, Sign(h.secret, body))
}

func Sign(secret, body []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return mac.Sum(nil)
}

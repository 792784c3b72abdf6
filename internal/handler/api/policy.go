package api

import (
	"net/http"
	"strconv"

	reqdto "session-ledger/internal/handler/dto/request"
	resdto "session-ledger/internal/handler/dto/response"
	"session-ledger/internal/handler/httperr"
	"session-ledger/internal/usecase/commands"
	"session-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PolicyHandler struct {
	cmds commands.PolicyCommands
	q    queries.PolicyQueries
}

func NewPolicyHandler(cmds commands.PolicyCommands, q queries.PolicyQueries) *PolicyHandler {
	return &PolicyHandler{cmds: cmds, q: q}
}

// @Summary Active policy
// @Description Get the cancellation policy currently in force
// @Tags policies
// @Produce json
// @Success 200 {object} resdto.PolicyResponse
// @Failure 503 {object} httperr.Response
// @Router /policies/active [get]
func (h *PolicyHandler) Active(c *gin.Context) {
	view, err := h.q.Active(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromPolicyView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List policies
// @Description List every policy version, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PolicyResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/policies [get]
func (h *PolicyHandler) List(c *gin.Context) {
	views, err := h.q.Versions(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromPolicyViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Publish policy
// @Description Publish a new policy version; it replaces the active one
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PublishPolicyRequest true "Policy draft"
// @Success 201 {object} resdto.PolicyResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/policies [post]
func (h *PolicyHandler) Publish(c *gin.Context) {
	var req reqdto.PublishPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	p, err := h.cmds.Publish(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromPolicyView(queries.ToPolicyView(p))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/admin/policies/"+strconv.Itoa(int(p.Version())))
	c.JSON(http.StatusCreated, res)
}

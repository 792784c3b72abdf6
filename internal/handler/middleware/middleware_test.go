//go:build unit

package middleware_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"session-ledger/internal/domain/user"
	"session-ledger/internal/handler/middleware"
	"session-ledger/internal/pkg/config"
	"session-ledger/internal/pkg/jwt"
	"session-ledger/tests/common/httptest"
	usecasemock "session-ledger/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func principal(t *testing.T, role user.Role) user.Principal {
	t.Helper()
	p, err := user.NewPrincipal(uuid.New(), role)
	require.NoError(t, err)
	return p
}

// ================================================================================
// Auth
// ================================================================================

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	auth := middleware.NewAuthMiddleware(validator)

	client := principal(t, user.RoleClient)
	admin := principal(t, user.RoleAdmin)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	whoami := func(c *gin.Context) {
		p, ok := middleware.GetPrincipal(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": p.UserID().String(), "role": p.Role().String()})
	}
	r.GET("/me", auth.RequireAuth(), whoami)
	r.GET("/admin", auth.RequireAuth(), auth.RequireRole(user.RoleAdmin), whoami)
	r.GET("/no-auth-admin", auth.RequireRole(user.RoleAdmin), whoami)

	t.Run("valid token sets the principal", func(t *testing.T) {
		validator.EXPECT().ValidateToken("good").Return(client, nil)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "good")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, client.UserID().String(), body["user_id"])
		assert.Equal(t, "client", body["role"])
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("rejected token", func(t *testing.T) {
		validator.EXPECT().ValidateToken("expired").Return(user.Principal{}, jwt.ErrExpiredToken)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "expired")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("role allowed", func(t *testing.T) {
		validator.EXPECT().ValidateToken("admin").Return(admin, nil)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, "admin")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("role denied", func(t *testing.T) {
		validator.EXPECT().ValidateToken("good").Return(client, nil)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, "good")
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})

	t.Run("role check without auth is a wiring error", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/no-auth-admin", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "")
	})
}

// ================================================================================
// RateLimiter
// ================================================================================

func TestRateLimiter_Allow(t *testing.T) {
	rl := middleware.NewRateLimiter(1, 2, time.Minute)

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"), "burst exhausted")
	assert.True(t, rl.Allow("b"), "keys have separate buckets")
	assert.Equal(t, 2, rl.Size())
}

func TestRateLimiter_Sweep(t *testing.T) {
	rl := middleware.NewRateLimiter(1, 1, time.Nanosecond)
	rl.Allow("a")
	time.Sleep(time.Millisecond)

	rl.Sweep()
	assert.Equal(t, 0, rl.Size())
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := middleware.NewRateLimiter(0.001, 1, time.Minute)
	client := principal(t, user.RoleClient)

	r := gin.New()
	r.GET("/anon", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/authed", func(c *gin.Context) {
		middleware.SetPrincipal(c, client)
		c.Next()
	}, rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/anon", nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = httptest.PerformRequest(t, r, http.MethodGet, "/anon", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Rate limit exceeded")

	// same IP, but an authenticated caller gets its own bucket
	rec = httptest.PerformRequest(t, r, http.MethodGet, "/authed", nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// ================================================================================
// Request ID
// ================================================================================

func TestLoggingMiddleware_RequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.LoggingMiddleware(nil, config.NewTestConfig().Log))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("generates a ulid", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "")
		id := rec.Header().Get("X-Request-ID")
		_, err := ulid.ParseStrict(id)
		require.NoError(t, err)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("keeps a valid upstream id", func(t *testing.T) {
		upstream := ulid.Make().String()
		rec := httptest.PerformRawRequest(t, r, http.MethodGet, "/ping", nil, map[string]string{"X-Request-ID": upstream})
		assert.Equal(t, upstream, rec.Header().Get("X-Request-ID"))
	})

	t.Run("replaces a malformed upstream id", func(t *testing.T) {
		rec := httptest.PerformRawRequest(t, r, http.MethodGet, "/ping", nil, map[string]string{"X-Request-ID": "abc"})
		assert.NotEqual(t, "abc", rec.Header().Get("X-Request-ID"))
	})
}

// ================================================================================
// Recovery and CORS
// ================================================================================

func TestCustomRecovery(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.LoggingMiddleware(nil, config.NewTestConfig().Log))
	r.GET("/boom", func(_ *gin.Context) {
		panic("ledger exploded")
	})

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/boom", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCORSMiddleware_ExposesLedgerHeaders(t *testing.T) {
	cfg := config.NewTestConfig().CORS
	cfg.AllowOrigins = []string{"https://app.example.com"}
	cfg.ExposeHeaders = []string{"Content-Length", "Location"}

	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.PerformRawRequest(t, r, http.MethodGet, "/ping", nil,
		map[string]string{"Origin": "https://app.example.com"})

	exposed := rec.Header().Get("Access-Control-Expose-Headers")
	assert.Contains(t, exposed, "Location")
	assert.Contains(t, exposed, "X-Request-Id")
	assert.Equal(t, 1, strings.Count(exposed, "Location"))
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

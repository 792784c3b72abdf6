//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"session-ledger/internal/domain/user"
	"session-ledger/internal/pkg/config"
	"session-ledger/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the identity service does.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, userID, role.String(), time.Now().Add(15*time.Minute))
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, userID, role.String(), time.Now().Add(-time.Minute))
}

func (h *JWTHelper) CreateTokenWithRole(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	return h.sign(t, userID, role, time.Now().Add(15*time.Minute))
}

func (h *JWTHelper) sign(t *testing.T, userID uuid.UUID, role string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    h.cfg.Issuer,
			IssuedAt:  gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
			ExpiresAt: gojwt.NewNumericDate(expiresAt),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.Secret))
	require.NoError(t, err)
	return token
}

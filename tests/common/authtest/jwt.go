//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"homestay-pricing/internal/pkg/config"
	"homestay-pricing/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

const DefaultTokenTTL = time.Hour

type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret)}
}

// GenerateToken issues a token shaped like the ones the homestay backend hands out.
func (h *JWTHelper) GenerateToken(t *testing.T, userID int64, email string) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, email, "user", DefaultTokenTTL)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID int64, email string) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, email, "user", -time.Minute)
	require.NoError(t, err)
	return token
}

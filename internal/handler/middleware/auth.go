package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"homestay-pricing/internal/handler/httperr"
	"homestay-pricing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey    = "user_id"
	ctxTokenKey     = "access_token"
	ctxRequestIDKey = "request_id"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithCode(c, http.StatusUnauthorized, "token_missing", errMissingToken, "Access token required", nil)
			return
		}

		userID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithCode(c, http.StatusUnauthorized, "token_invalid", err, "Invalid or expired token", nil)
			return
		}

		setUser(c, userID, token)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and lets
// anonymous requests through otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		userID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			// Invalid token; continue without aborting.
			c.Next()
			return
		}

		setUser(c, userID, token)
		c.Next()
	}
}

func setUser(c *gin.Context, userID int64, token string) {
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxTokenKey, token)
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int64)
	return id, ok
}

// UserIDPtr is GetUserID for optional-auth routes.
func UserIDPtr(c *gin.Context) *int64 {
	if id, ok := GetUserID(c); ok {
		return &id
	}
	return nil
}

// GetAccessToken returns the caller's raw token so upstream calls act on their behalf.
func GetAccessToken(c *gin.Context) string {
	return c.GetString(ctxTokenKey)
}

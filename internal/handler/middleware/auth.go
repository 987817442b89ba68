package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lumiere-guest-api/internal/pkg/cookie"
	"lumiere-guest-api/internal/usecase"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxGuestIDKey   = "guest_id"
	ctxGuestRoleKey = "guest_role"
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
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		guestID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxGuestIDKey, guestID)
		c.Set(ctxGuestRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"guest_id": guestID.String(),
			"role":     string(role),
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	token := cookie.GetAccessToken(c)
	if token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetGuestID(c *gin.Context) (uuid.UUID, bool) {
	guestID, exists := c.Get(ctxGuestIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := guestID.(uuid.UUID)
	return id, ok
}

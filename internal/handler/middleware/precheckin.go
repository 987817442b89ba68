package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lumiere-guest-api/internal/handler/httperr"
	"lumiere-guest-api/internal/usecase"
	"lumiere-guest-api/internal/usecase/commands"
)

const SessionTokenHeader = "X-PreCheckIn-Token"

type PreCheckInMiddleware struct {
	sessions usecase.SessionValidator
}

func NewPreCheckInMiddleware(sessions usecase.SessionValidator) *PreCheckInMiddleware {
	return &PreCheckInMiddleware{sessions: sessions}
}

// RequireSession guards the wizard routes. The session token is issued by
// Start and travels in a header; the booking ID comes from the route.
func (m *PreCheckInMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID := c.Param("bookingId")
		token := c.GetHeader(SessionTokenHeader)
		if bookingID == "" || token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrSessionNotFound, "Pre-check-in session required", nil)
			return
		}

		if err := m.sessions.Validate(c.Request.Context(), bookingID, token); err != nil {
			switch {
			case errors.Is(err, commands.ErrSessionExpired):
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "Session expired, please start again", nil)
			case errors.Is(err, commands.ErrSessionNotFound):
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid pre-check-in session", nil)
			default:
				httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			}
			return
		}

		c.Next()
	}
}

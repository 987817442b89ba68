package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "lumiere-guest-api/internal/handler/dto/request"
	resdto "lumiere-guest-api/internal/handler/dto/response"
	"lumiere-guest-api/internal/handler/middleware"
	"lumiere-guest-api/internal/pkg/config"
	"lumiere-guest-api/internal/pkg/cookie"
	"lumiere-guest-api/internal/pkg/jwt"
	"lumiere-guest-api/internal/usecase/commands"
	"lumiere-guest-api/internal/usecase/queries"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	guestQueries *queries.GuestQueries
	jwtService   *jwt.Service
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(
	authCommands commands.AuthCommands,
	guestQueries *queries.GuestQueries,
	jwtService *jwt.Service,
	cookieCfg config.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		guestQueries: guestQueries,
		jwtService:   jwtService,
		cookieCfg:    cookieCfg,
	}
}

// @Summary Guest registration
// @Description Register a new guest account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration request"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email already registered",
			})
		case errors.Is(err, commands.ErrAuthenticationFailed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	h.issueCookies(c, result.TokenPair)
	guest, _ := h.guestQueries.GetCurrent(c.Request.Context(), result.GuestID)
	c.JSON(http.StatusCreated, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		Guest:       guest,
	})
}

// @Summary Guest login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials),
			errors.Is(err, commands.ErrGuestNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, commands.ErrGuestInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is inactive",
			})
		case errors.Is(err, commands.ErrAuthenticationFailed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	h.issueCookies(c, result.TokenPair)
	guest, _ := h.guestQueries.GetCurrent(c.Request.Context(), result.GuestID)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		Guest:       guest,
	})
}

// @Summary Refresh tokens
// @Description Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Refresh token required",
			})
			return
		}
		refreshToken = req.RefreshToken
	}

	pair, err := h.authCommands.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired refresh token",
		})
		return
	}

	h.issueCookies(c, pair)
	c.JSON(http.StatusOK, gin.H{
		"access_token": pair.AccessToken,
	})
}

// @Summary Guest logout
// @Description Clear session cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current guest
// @Description Get current authenticated guest information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.GuestView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Guest not authenticated",
		})
		return
	}

	guest, err := h.guestQueries.GetCurrent(c.Request.Context(), guestID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, guest)
}

func (h *AuthHandler) issueCookies(c *gin.Context, pair *commands.TokenPair) {
	cookie.SetTokenCookies(
		c,
		h.cookieCfg,
		pair.AccessToken,
		pair.RefreshToken,
		h.jwtService.AccessTokenDuration(),
		h.jwtService.RefreshTokenDuration(),
	)
}

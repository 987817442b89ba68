//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"lumiere-guest-api/internal/handler/api"
	resdto "lumiere-guest-api/internal/handler/dto/response"
	"lumiere-guest-api/internal/infra/kv"
	"lumiere-guest-api/internal/infra/repository"
	"lumiere-guest-api/internal/pkg/config"
	"lumiere-guest-api/internal/pkg/jwt"
	"lumiere-guest-api/internal/usecase/commands"
	"lumiere-guest-api/internal/usecase/queries"
	"lumiere-guest-api/tests/common/builder"
	"lumiere-guest-api/tests/common/httptest"
	"lumiere-guest-api/tests/common/testutil"
	commandsmock "lumiere-guest-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	guests       *repository.GuestRepository
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)

	s.guests = repository.NewGuestRepository(kv.NewInMemStore())
	guestQueries := queries.NewGuestQueries(s.guests)

	cfg := config.NewTestConfig()
	jwtService := jwt.NewService(cfg.JWT.Secret, 15*time.Minute, 168*time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, guestQueries, jwtService, cfg.Cookie)

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if id := c.GetHeader("X-Test-Guest"); id != "" {
			c.Set("guest_id", uuid.MustParse(id))
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

// seedGuest persists a guest the concrete query service can read back.
func (s *AuthHandlerTestSuite) seedGuest() uuid.UUID {
	guest, err := builder.NewGuestBuilder().BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(s.guests.Create(context.Background(), guest))
	return guest.ID
}

func tokenPair() *commands.TokenPair {
	return &commands.TokenPair{AccessToken: "test-access-token", RefreshToken: "test-refresh-token"}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewGuestBuilder().BuildRegisterDTO()

	s.Run("success: returns 201 Created with cookies", func() {
		guestID := s.seedGuest()
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(&commands.LoginResult{GuestID: guestID, TokenPair: tokenPair()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("test-access-token", response.AccessToken)
		s.Require().NotNil(response.Guest)
		s.Equal(reqBody.Email, response.Guest.Email)
		s.NotNil(httptest.ExtractCookie(rec, "access_token"))
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil)},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
			{name: "password boundary invalid (7 chars)", mutate: testutil.Field("password", "seven77")},
			{name: "missing field: first_name (required)", mutate: testutil.Field("first_name", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 Conflict when email is taken", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(nil, commands.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewGuestBuilder().BuildLoginDTO()

	s.Run("success: returns 200 OK for valid credentials", func() {
		guestID := s.seedGuest()
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.LoginResult{GuestID: guestID, TokenPair: tokenPair()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reqBody.Email, response.Guest.Email)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "guest not found",
				commandsError:  commands.ErrGuestNotFound,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "guest inactive",
				commandsError:  commands.ErrGuestInactive,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Account is inactive",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("store unavailable"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	s.Run("success: accepts the token from the request body", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "test-refresh-token").
			Return(tokenPair(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"refresh_token": "test-refresh-token"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 401 Unauthorized for a rejected token", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "stale-token").
			Return(nil, commands.ErrTokenValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"refresh_token": "stale-token"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired refresh token")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 No Content", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns 200 OK with the current guest", func() {
		guestID := s.seedGuest()

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, url, nil, "",
			map[string]string{"X-Test-Guest": guestID.String()})

		var response queries.GuestView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(guestID, response.ID)
	})

	s.Run("error: 401 Unauthorized without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Guest not authenticated")
	})

	s.Run("error: 404 Not Found for an unknown guest", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, url, nil, "",
			map[string]string{"X-Test-Guest": uuid.NewString()})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Guest not found")
	})
}

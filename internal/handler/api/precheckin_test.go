//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"lumiere-guest-api/internal/domain/precheckin"
	"lumiere-guest-api/internal/handler/api"
	resdto "lumiere-guest-api/internal/handler/dto/response"
	"lumiere-guest-api/internal/infra/kv"
	"lumiere-guest-api/internal/infra/repository"
	"lumiere-guest-api/internal/usecase/commands"
	"lumiere-guest-api/internal/usecase/queries"
	"lumiere-guest-api/tests/common/httptest"
	commandsmock "lumiere-guest-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testBookingID = "GLM-2026-12345"

type PreCheckInHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPreCheckInCommands
	drafts       *repository.PreCheckInRepository
	handler      *api.PreCheckInHandler
}

func (s *PreCheckInHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPreCheckInCommands(s.mockCtrl)

	s.drafts = repository.NewPreCheckInRepository(kv.NewInMemStore())
	s.handler = api.NewPreCheckInHandler(s.mockCommands, queries.NewPreCheckInQueries(s.drafts))

	s.router.POST("/precheckin/start", s.handler.Start)
	s.router.GET("/precheckin/:bookingId", s.handler.Get)
	s.router.PUT("/precheckin/:bookingId/step", s.handler.GoToStep)
	s.router.POST("/precheckin/:bookingId/next", s.handler.Next)
	s.router.PUT("/precheckin/:bookingId/signature", s.handler.Sign)
}

func (s *PreCheckInHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPreCheckInHandlerSuite(t *testing.T) {
	suite.Run(t, new(PreCheckInHandlerTestSuite))
}

func (s *PreCheckInHandlerTestSuite) newDraft() *precheckin.Draft {
	return precheckin.NewDraft(testBookingID, time.Date(2026, 9, 8, 9, 0, 0, 0, time.UTC))
}

func (s *PreCheckInHandlerTestSuite) TestStart() {
	url := "/precheckin/start"
	reqBody := map[string]any{"booking_id": testBookingID, "email": "marie.dubois@example.com"}

	s.Run("success: returns 200 OK with session token", func() {
		s.mockCommands.EXPECT().Start(gomock.Any(), gomock.Any()).
			Return(&commands.StartResult{Token: "session-token", Draft: s.newDraft()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.StartPreCheckInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("session-token", response.Token)
		s.Equal(1, response.PreCheckIn.Step)
		s.Equal("welcome", response.PreCheckIn.StepName)
	})

	s.Run("error: invalid email is a 400 Bad Request", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"booking_id": testBookingID, "email": "not-an-email"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: unknown booking and mismatched email look identical", func() {
		for _, cmdErr := range []error{commands.ErrBookingNotFound, commands.ErrEmailMismatch} {
			s.mockCommands.EXPECT().Start(gomock.Any(), gomock.Any()).
				Return(nil, cmdErr).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
		}
	})
}

func (s *PreCheckInHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 OK with step progress", func() {
		s.Require().NoError(s.drafts.Save(context.Background(), s.newDraft()))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/precheckin/"+testBookingID, nil, "")

		var response resdto.PreCheckInDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Progress, int(precheckin.StepComplete))
		s.True(response.Progress[0].Complete) // welcome needs nothing
	})

	s.Run("error: 404 Not Found before the wizard is started", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/precheckin/GLM-2026-99999", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pre-check-in not found")
	})
}

func (s *PreCheckInHandlerTestSuite) TestGoToStep() {
	url := "/precheckin/" + testBookingID + "/step"

	s.Run("success: returns 200 OK", func() {
		draft := s.newDraft()
		draft.GoToStep(precheckin.StepRoomSelection, time.Now())
		s.mockCommands.EXPECT().GoToStep(gomock.Any(), testBookingID, 4).
			Return(draft, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"step": 4}, "")

		var response resdto.PreCheckInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(4, response.Step)
	})

	s.Run("error: out-of-range step is a 400 Bad Request", func() {
		for _, step := range []int{0, 9} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"step": step}, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})
}

func (s *PreCheckInHandlerTestSuite) TestNext() {
	s.Run("success: returns 200 OK with advanced draft", func() {
		draft := s.newDraft()
		draft.Next(time.Now())
		s.mockCommands.EXPECT().Next(gomock.Any(), testBookingID).
			Return(draft, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/precheckin/"+testBookingID+"/next", nil, "")

		var response resdto.PreCheckInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Step)
		s.Equal("guest_info", response.StepName)
	})
}

func (s *PreCheckInHandlerTestSuite) TestSign() {
	s.Run("success: signature accepts the terms", func() {
		draft := s.newDraft()
		draft.UpdateSignature("Marie Dubois", time.Now())
		s.mockCommands.EXPECT().Sign(gomock.Any(), testBookingID, "Marie Dubois").
			Return(draft, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/precheckin/"+testBookingID+"/signature",
			map[string]any{"signature": "Marie Dubois"}, "")

		var response resdto.PreCheckInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.TermsAccepted)
	})
}

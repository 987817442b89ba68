//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"lumiere-guest-api/internal/domain/booking"
	"lumiere-guest-api/internal/handler/api"
	resdto "lumiere-guest-api/internal/handler/dto/response"
	"lumiere-guest-api/internal/infra/kv"
	"lumiere-guest-api/internal/infra/repository"
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

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	store        *kv.InMemStore
	drafts       *repository.DraftRepository
	bookings     *repository.BookingRepository
	guestID      uuid.UUID
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)

	// Queries are concrete services, so they read from a real in-memory store.
	s.store = kv.NewInMemStore()
	s.drafts = repository.NewDraftRepository(s.store)
	s.bookings = repository.NewBookingRepository(s.store)
	bookingQueries := queries.NewBookingQueries(s.drafts, s.bookings)

	s.guestID = uuid.New()
	s.handler = api.NewBookingHandler(s.mockCommands, bookingQueries)

	authed := s.router.Group("", func(c *gin.Context) {
		// Mock middleware behavior for authenticated routes
		c.Set("guest_id", s.guestID)
	})
	authed.PUT("/bookings/draft", s.handler.SetDraft)
	authed.GET("/bookings/draft", s.handler.GetDraft)
	authed.PATCH("/bookings/draft", s.handler.UpdateDraft)
	authed.DELETE("/bookings/draft", s.handler.ClearDraft)
	authed.POST("/bookings", s.handler.Submit)
	authed.GET("/bookings", s.handler.ListBookings)
	authed.GET("/bookings/:reference", s.handler.GetBooking)
	authed.POST("/bookings/:reference/cancel", s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) buildDraft() *booking.Draft {
	draft, err := builder.NewDraftBuilder().BuildDomain()
	s.Require().NoError(err)
	return draft
}

func (s *BookingHandlerTestSuite) buildBooking(guestID uuid.UUID) *booking.Completed {
	return booking.NewCompleted(
		s.buildDraft(), guestID, "GLM-2026-12345",
		booking.CardInfo{Brand: "visa", Last4: "4242"},
		time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	)
}

func (s *BookingHandlerTestSuite) TestSetDraft() {
	url := "/bookings/draft"
	reqBody := builder.NewDraftBuilder().BuildSetDTO()

	s.Run("success: returns 200 OK with priced draft", func() {
		s.mockCommands.EXPECT().SetDraft(gomock.Any(), s.guestID, reqBody).
			Return(s.buildDraft(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var response resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("deluxe-terrace", response.RoomID)
		s.Equal(int64(93200), response.Pricing.TotalCents)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "missing field: room_id (required)", mutate: testutil.Field("room_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: check_in (required)", mutate: testutil.Field("check_in", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: check_out (required)", mutate: testutil.Field("check_out", nil), expectCode: http.StatusBadRequest},
			{name: "guests boundary invalid (0)", mutate: testutil.Field("guests", 0), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown room",
				commandsError:  commands.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "invalid stay",
				commandsError:  commands.ErrValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking details",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SetDraft(gomock.Any(), s.guestID, reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetDraft() {
	url := "/bookings/draft"

	s.Run("success: returns 200 OK with saved draft", func() {
		s.Require().NoError(s.drafts.Save(context.Background(), s.guestID, s.buildDraft()))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Guests)
	})

	s.Run("error: 404 Not Found when no draft exists", func() {
		s.Require().NoError(s.drafts.Delete(context.Background(), s.guestID))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No booking draft")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateDraft() {
	url := "/bookings/draft"
	reqBody := map[string]any{"guests": 3}

	s.Run("success: returns 200 OK with merged draft", func() {
		s.mockCommands.EXPECT().UpdateDraft(gomock.Any(), s.guestID, gomock.Any()).
			Return(s.buildDraft(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: 204 No Content when no draft exists", func() {
		s.mockCommands.EXPECT().UpdateDraft(gomock.Any(), s.guestID, gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestClearDraft() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().ClearDraft(gomock.Any(), s.guestID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/draft", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestSubmit() {
	url := "/bookings"
	reqBody := builder.NewDraftBuilder().BuildSubmitDTO()

	s.Run("success: returns 201 Created with reference", func() {
		confirmed := s.buildBooking(s.guestID)
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.guestID, reqBody).
			Return(&commands.SubmitResult{Reference: confirmed.Reference, Booking: confirmed}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("GLM-2026-12345", response.Reference)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "no draft",
				commandsError:  commands.ErrNoDraft,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "No booking draft to submit",
			},
			{
				name:           "payment declined",
				commandsError:  commands.ErrPaymentDeclined,
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "Payment declined by your bank",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Submit(gomock.Any(), s.guestID, reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success: returns 200 OK for the owning guest", func() {
		s.Require().NoError(s.bookings.Save(context.Background(), s.buildBooking(s.guestID)))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/GLM-2026-12345", nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("GLM-2026-12345", response.Reference)
	})

	s.Run("error: 404 Not Found for another guest's booking", func() {
		s.Require().NoError(s.bookings.Save(context.Background(), s.buildBooking(uuid.New())))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/GLM-2026-12345", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 404 Not Found for unknown reference", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/GLM-2026-99999", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	url := "/bookings/GLM-2026-12345/cancel"

	s.Run("success: returns 200 OK with cancelled booking", func() {
		cancelled := s.buildBooking(s.guestID)
		s.Require().NoError(cancelled.Cancel(time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)))
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.guestID, "GLM-2026-12345").
			Return(cancelled, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown booking",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "already cancelled",
				commandsError:  commands.ErrBookingNotCancellable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Booking can no longer be cancelled",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), s.guestID, "GLM-2026-12345").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

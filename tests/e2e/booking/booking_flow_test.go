//go:build e2e

package booking_test

import (
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	resdto "lumiere-guest-api/internal/handler/dto/response"
	"lumiere-guest-api/internal/handler/middleware"
	"lumiere-guest-api/tests/common/builder"
	"lumiere-guest-api/tests/common/httptest"
	"lumiere-guest-api/tests/e2e"
)

const (
	registerURL = "/api/auth/register"
	roomsURL    = "/api/rooms"
	draftURL    = "/api/bookings/draft"
	bookingsURL = "/api/bookings"
	startURL    = "/api/precheckin/start"
)

type bookingFlowSuite struct {
	e2e.SharedSuite
}

func TestBookingFlowSuite(t *testing.T) {
	suite.Run(t, new(bookingFlowSuite))
}

// register creates an account and returns the bearer token.
func (s *bookingFlowSuite) register() string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL,
		builder.NewGuestBuilder().BuildRegisterDTO(), "")

	var response resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
	s.Require().NotEmpty(response.AccessToken)
	return response.AccessToken
}

func (s *bookingFlowSuite) TestGuestJourney() {
	token := s.register()

	s.Run("browse the catalog", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, roomsURL+"?category=deluxe&sort=price_asc", nil, "")

		var rooms []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &rooms)
		s.Require().Len(rooms, 3)
		s.Equal("deluxe-terrace", rooms[0].ID)
	})

	s.Run("draft a stay", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, draftURL,
			builder.NewDraftBuilder().BuildSetDTO(), token)

		var draft resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &draft)
		s.Equal(int64(93200), draft.Pricing.TotalCents)
	})

	s.Run("attach contact details", func() {
		patch := map[string]any{
			"contact": map[string]any{
				"first_name": "Marie",
				"last_name":  "Dubois",
				"email":      "marie.dubois@example.com",
			},
			"terms_accepted": true,
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, draftURL, patch, token)

		var draft resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &draft)
		s.True(draft.TermsAccepted)
	})

	var reference string
	s.Run("submit with payment", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
			builder.NewDraftBuilder().BuildSubmitDTO(), token)

		var response resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Regexp(regexp.MustCompile(`^GLM-2026-\d{5}$`), response.Reference)
		s.Equal("confirmed", response.Status)
		reference = response.Reference
	})

	s.Run("draft survives submission", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, draftURL, nil, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	var sessionToken string
	s.Run("start pre-check-in from the emailed link", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, startURL,
			map[string]any{"booking_id": reference, "email": "marie.dubois@example.com"}, "")

		var response resdto.StartPreCheckInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotEmpty(response.Token)
		s.Equal(1, response.PreCheckIn.Step)
		sessionToken = response.Token
	})

	wizardURL := "/api/precheckin/" + reference
	withSession := map[string]string{middleware.SessionTokenHeader: sessionToken}

	s.Run("wizard routes reject a missing session token", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, wizardURL, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("walk the wizard to completion", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPatch, wizardURL+"/guest-info",
			map[string]any{"guest_info": map[string]any{
				"first_name": "Marie",
				"email":      "marie.dubois@example.com",
			}}, "", withSession)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPut, wizardURL+"/signature",
			map[string]any{"signature": "Marie Dubois"}, "", withSession)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		var wizard *resdto.PreCheckInResponse
		for range 7 {
			rec = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, wizardURL+"/next", nil, "", withSession)
			wizard = new(resdto.PreCheckInResponse)
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, wizard)
		}

		s.Equal(8, wizard.Step)
		s.True(wizard.Completed)
		s.True(wizard.DigitalKeyIssued)
	})

	s.Run("completion is idempotent", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, wizardURL+"/complete", nil, "", withSession)

		var wizard resdto.PreCheckInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &wizard)
		s.True(wizard.Completed)
	})

	s.Run("session expires after its TTL", func() {
		s.Clock.Add(25 * time.Hour)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodGet, wizardURL, nil, "", withSession)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *bookingFlowSuite) TestSubmitWithoutDraft() {
	token := s.register()

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
		builder.NewDraftBuilder().BuildSubmitDTO(), token)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No booking draft to submit")
}

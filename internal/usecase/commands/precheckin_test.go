//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"lumiere-guest-api/internal/domain/booking"
	"lumiere-guest-api/internal/domain/precheckin"
	reqdto "lumiere-guest-api/internal/handler/dto/request"
	"lumiere-guest-api/internal/infra/kv"
	"lumiere-guest-api/internal/infra/repository"
	"lumiere-guest-api/internal/pkg/clock"
	"lumiere-guest-api/internal/pkg/config"
	"lumiere-guest-api/internal/usecase/commands"
	"lumiere-guest-api/tests/common/builder"
)

const (
	testReference = "GLM-2026-12345"
	testEmail     = "marie.dubois@example.com"
)

type PreCheckInCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *kv.InMemStore
	drafts   *repository.PreCheckInRepository
	bookings *repository.BookingRepository
	clock    *clock.MockClock
	cmds     commands.PreCheckInCommands
}

func TestPreCheckInCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(PreCheckInCommandsTestSuite))
}

func (s *PreCheckInCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = kv.NewInMemStore()
	s.drafts = repository.NewPreCheckInRepository(s.store)
	s.bookings = repository.NewBookingRepository(s.store)
	s.clock = clock.NewMockClock(time.Date(2026, 9, 8, 9, 0, 0, 0, time.UTC))
	s.cmds = commands.NewPreCheckInCommands(
		s.drafts, s.bookings, config.PreCheckInConfig{SessionTTL: 24 * time.Hour}, testMetrics, s.clock,
	)

	s.seedBooking()
}

// seedBooking stores a confirmed booking the wizard can be started against.
func (s *PreCheckInCommandsTestSuite) seedBooking() {
	draft, err := builder.NewDraftBuilder().BuildDomain()
	s.Require().NoError(err)
	draft.Contact = &booking.GuestContact{
		FirstName: "Marie",
		LastName:  "Dubois",
		Email:     testEmail,
	}

	completed := booking.NewCompleted(
		draft, uuid.New(), testReference,
		booking.CardInfo{Brand: "visa", Last4: "4242"}, s.clock.Now(),
	)
	s.Require().NoError(s.bookings.Save(s.ctx, completed))
}

func (s *PreCheckInCommandsTestSuite) start(email string) (*commands.StartResult, error) {
	return s.cmds.Start(s.ctx, reqdto.StartPreCheckInRequest{BookingID: testReference, Email: email})
}

func (s *PreCheckInCommandsTestSuite) TestStart_IssuesSessionAndWelcomeDraft() {
	result, err := s.start(testEmail)

	s.Require().NoError(err)
	s.NotEmpty(result.Token)
	s.Equal(precheckin.StepWelcome, result.Draft.Step)
	s.False(result.Draft.Completed)

	session, err := s.drafts.FindSession(s.ctx, testReference)
	s.Require().NoError(err)
	s.Equal(result.Token, session.Token)
	s.Equal(s.clock.Now().Add(24*time.Hour), session.ExpiresAt)
}

func (s *PreCheckInCommandsTestSuite) TestStart_EmailIsCaseInsensitive() {
	_, err := s.start("MARIE.DUBOIS@Example.COM")

	s.Require().NoError(err)
}

func (s *PreCheckInCommandsTestSuite) TestStart_EmailMismatch() {
	_, err := s.start("someone.else@example.com")

	s.Require().ErrorIs(err, commands.ErrEmailMismatch)
}

func (s *PreCheckInCommandsTestSuite) TestStart_UnknownBooking() {
	_, err := s.cmds.Start(s.ctx, reqdto.StartPreCheckInRequest{
		BookingID: "GLM-2026-00000",
		Email:     testEmail,
	})

	s.Require().ErrorIs(err, commands.ErrBookingNotFound)
}

func (s *PreCheckInCommandsTestSuite) TestStart_RestartKeepsProgress() {
	first := "Marie"
	_, err := s.cmds.UpdateGuestInfo(s.ctx, testReference, precheckin.GuestInfoPatch{FirstName: &first})
	s.Require().NoError(err)

	result, err := s.start(testEmail)

	s.Require().NoError(err)
	s.Require().NotNil(result.Draft.GuestInfo)
	s.Equal("Marie", result.Draft.GuestInfo.FirstName)
}

func (s *PreCheckInCommandsTestSuite) TestGoToStep_RejectsOutOfRange() {
	for _, step := range []int{0, -1, 9} {
		_, err := s.cmds.GoToStep(s.ctx, testReference, step)
		s.Require().ErrorIs(err, commands.ErrInvalidStep)
	}
}

func (s *PreCheckInCommandsTestSuite) TestNavigation_PersistsPosition() {
	_, err := s.cmds.Next(s.ctx, testReference)
	s.Require().NoError(err)
	draft, err := s.cmds.Next(s.ctx, testReference)
	s.Require().NoError(err)
	s.Equal(precheckin.StepIDVerification, draft.Step)

	saved, err := s.drafts.Find(s.ctx, testReference)
	s.Require().NoError(err)
	s.Equal(precheckin.StepIDVerification, saved.Step)

	draft, err = s.cmds.Previous(s.ctx, testReference)
	s.Require().NoError(err)
	s.Equal(precheckin.StepGuestInfo, draft.Step)
}

func (s *PreCheckInCommandsTestSuite) TestNext_OntoFinalStepFinalizes() {
	_, err := s.cmds.GoToStep(s.ctx, testReference, int(precheckin.StepTermsSignature))
	s.Require().NoError(err)

	draft, err := s.cmds.Next(s.ctx, testReference)

	s.Require().NoError(err)
	s.Equal(precheckin.StepComplete, draft.Step)
	s.True(draft.Completed)
	s.True(draft.DigitalKeyIssued)
	s.Require().NotNil(draft.CompletedAt)
	s.Equal(s.clock.Now(), *draft.CompletedAt)
}

func (s *PreCheckInCommandsTestSuite) TestComplete_KeepsFirstCompletionTime() {
	_, err := s.cmds.GoToStep(s.ctx, testReference, int(precheckin.StepComplete))
	s.Require().NoError(err)
	first, err := s.cmds.Complete(s.ctx, testReference)
	s.Require().NoError(err)

	s.clock.Add(2 * time.Hour)
	second, err := s.cmds.Complete(s.ctx, testReference)

	s.Require().NoError(err)
	s.Equal(*first.CompletedAt, *second.CompletedAt)
	s.True(second.DigitalKeyIssued)
}

func (s *PreCheckInCommandsTestSuite) TestUpdateGuestInfo_MergesShallowly() {
	first, email := "Marie", testEmail
	_, err := s.cmds.UpdateGuestInfo(s.ctx, testReference, precheckin.GuestInfoPatch{
		FirstName: &first,
		Email:     &email,
	})
	s.Require().NoError(err)

	phone := "+33 6 12 34 56 78"
	draft, err := s.cmds.UpdateGuestInfo(s.ctx, testReference, precheckin.GuestInfoPatch{Phone: &phone})

	s.Require().NoError(err)
	s.Equal("Marie", draft.GuestInfo.FirstName)
	s.Equal(testEmail, draft.GuestInfo.Email)
	s.Equal(phone, draft.GuestInfo.Phone)
}

func (s *PreCheckInCommandsTestSuite) TestUpdateRoomSelection_ReplacesWholesale() {
	_, err := s.cmds.UpdateRoomSelection(s.ctx, testReference, precheckin.RoomSelection{
		RoomID: "deluxe-terrace", RoomName: "Deluxe Terrace Room", Floor: 3, View: "garden",
	})
	s.Require().NoError(err)

	draft, err := s.cmds.UpdateRoomSelection(s.ctx, testReference, precheckin.RoomSelection{RoomID: "classic-courtyard"})

	s.Require().NoError(err)
	s.Equal("classic-courtyard", draft.RoomSelection.RoomID)
	s.Empty(draft.RoomSelection.View)
	s.Zero(draft.RoomSelection.Floor)
}

func (s *PreCheckInCommandsTestSuite) TestSign_AcceptsTerms() {
	draft, err := s.cmds.Sign(s.ctx, testReference, "Marie Dubois")

	s.Require().NoError(err)
	s.True(draft.TermsAccepted)
	s.Equal("Marie Dubois", draft.Signature)
}

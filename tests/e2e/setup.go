//go:build e2e

// Package e2e boots the full HTTP stack in process. The service has no
// external backing stores, so suites run against the in-memory driver with a
// zero-latency, always-approving payment gateway.
package e2e

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"lumiere-guest-api/internal/handler"
	"lumiere-guest-api/internal/handler/api"
	"lumiere-guest-api/internal/handler/middleware"
	"lumiere-guest-api/internal/infra/catalog"
	"lumiere-guest-api/internal/infra/kv"
	"lumiere-guest-api/internal/infra/payment"
	"lumiere-guest-api/internal/infra/repository"
	"lumiere-guest-api/internal/pkg/clock"
	"lumiere-guest-api/internal/pkg/config"
	"lumiere-guest-api/internal/pkg/jwt"
	"lumiere-guest-api/internal/pkg/metrics"
	"lumiere-guest-api/internal/usecase"
	"lumiere-guest-api/internal/usecase/commands"
	"lumiere-guest-api/internal/usecase/queries"
)

// promauto registers globally; one instance serves every suite in the binary.
var sharedMetrics = metrics.NewMetrics("e2e")

// SharedSuite assembles the router the way bootstrap does, minus fx.
type SharedSuite struct {
	suite.Suite
	Config config.Config
	Router *gin.Engine
	Store  *kv.InMemStore
	Clock  *clock.MockClock
}

func (s *SharedSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	// NewTestConfig already zeroes payment latency and decline rate, so
	// submissions are deterministic.
	s.Config = config.NewTestConfig()
	s.Store = kv.NewInMemStore()
	s.Clock = clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	guests := repository.NewGuestRepository(s.Store)
	drafts := repository.NewDraftRepository(s.Store)
	bookings := repository.NewBookingRepository(s.Store)
	preCheckIns := repository.NewPreCheckInRepository(s.Store)
	rooms := catalog.NewStaticRoomStore()

	jwtService := jwt.NewService(s.Config.JWT.Secret, 15*time.Minute, 168*time.Hour)
	gateway := payment.NewSimulatedGateway(s.Config.Booking)

	authCommands := commands.NewAuthCommands(guests, jwtService, s.Clock)
	bookingCommands := commands.NewBookingCommands(
		drafts, bookings, rooms, gateway, s.Config.Booking, sharedMetrics, s.Clock,
	)
	preCheckInCommands := commands.NewPreCheckInCommands(
		preCheckIns, bookings, s.Config.PreCheckIn, sharedMetrics, s.Clock,
	)

	handlers := handler.Handlers{
		Auth:       api.NewAuthHandler(authCommands, queries.NewGuestQueries(guests), jwtService, s.Config.Cookie),
		Room:       api.NewRoomHandler(queries.NewRoomQueries(rooms)),
		Booking:    api.NewBookingHandler(bookingCommands, queries.NewBookingQueries(drafts, bookings)),
		PreCheckIn: api.NewPreCheckInHandler(preCheckInCommands, queries.NewPreCheckInQueries(preCheckIns)),
	}

	s.Router = gin.New()
	handler.NewRouter(
		s.Router,
		s.Config,
		sharedMetrics,
		handlers,
		middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtService)),
		middleware.NewPreCheckInMiddleware(usecase.NewSessionValidator(preCheckIns, s.Clock)),
	)
}

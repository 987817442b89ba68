package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lumiere-guest-api/internal/handler/api"
	"lumiere-guest-api/internal/handler/middleware"
	"lumiere-guest-api/internal/pkg/config"
	"lumiere-guest-api/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Room       *api.RoomHandler
	Booking    *api.BookingHandler
	PreCheckIn *api.PreCheckInHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	m *metrics.Metrics,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	preCheckInMiddleware *middleware.PreCheckInMiddleware,
) {
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, handlers, authMiddleware, preCheckInMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	preCheckInMiddleware *middleware.PreCheckInMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: handlers.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: handlers.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: handlers.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: handlers.Auth.Me},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Room.ListRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Room.GetRoom},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPut, Path: "/draft", Handler: handlers.Booking.SetDraft},
				{Method: http.MethodGet, Path: "/draft", Handler: handlers.Booking.GetDraft},
				{Method: http.MethodPatch, Path: "/draft", Handler: handlers.Booking.UpdateDraft},
				{Method: http.MethodDelete, Path: "/draft", Handler: handlers.Booking.ClearDraft},
				{Method: http.MethodPost, Path: "", Handler: handlers.Booking.Submit},
				{Method: http.MethodGet, Path: "", Handler: handlers.Booking.ListBookings},
				{Method: http.MethodGet, Path: "/:reference", Handler: handlers.Booking.GetBooking},
				{Method: http.MethodPost, Path: "/:reference/cancel", Handler: handlers.Booking.CancelBooking},
			})
		}

		// The wizard is reachable via emailed link, so it carries its own
		// session token instead of the guest JWT.
		preCheckIn := apiGroup.Group("/precheckin")
		{
			addRoutes(preCheckIn, []route{
				{Method: http.MethodPost, Path: "/start", Handler: handlers.PreCheckIn.Start},
			})

			session := preCheckIn.Group("/:bookingId")
			session.Use(preCheckInMiddleware.RequireSession())
			addRoutes(session, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.PreCheckIn.Get},
				{Method: http.MethodPut, Path: "/step", Handler: handlers.PreCheckIn.GoToStep},
				{Method: http.MethodPost, Path: "/next", Handler: handlers.PreCheckIn.Next},
				{Method: http.MethodPost, Path: "/previous", Handler: handlers.PreCheckIn.Previous},
				{Method: http.MethodPatch, Path: "/guest-info", Handler: handlers.PreCheckIn.UpdateGuestInfo},
				{Method: http.MethodPatch, Path: "/id-verification", Handler: handlers.PreCheckIn.UpdateIDVerification},
				{Method: http.MethodPut, Path: "/room-selection", Handler: handlers.PreCheckIn.UpdateRoomSelection},
				{Method: http.MethodPatch, Path: "/special-requests", Handler: handlers.PreCheckIn.UpdateSpecialRequests},
				{Method: http.MethodPut, Path: "/signature", Handler: handlers.PreCheckIn.Sign},
				{Method: http.MethodPost, Path: "/complete", Handler: handlers.PreCheckIn.Complete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

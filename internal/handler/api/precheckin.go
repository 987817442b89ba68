package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lumiere-guest-api/internal/domain/precheckin"
	reqdto "lumiere-guest-api/internal/handler/dto/request"
	resdto "lumiere-guest-api/internal/handler/dto/response"
	"lumiere-guest-api/internal/usecase/commands"
	"lumiere-guest-api/internal/usecase/queries"
)

type PreCheckInHandler struct {
	preCheckInCommands commands.PreCheckInCommands
	preCheckInQueries  *queries.PreCheckInQueries
}

func NewPreCheckInHandler(
	preCheckInCommands commands.PreCheckInCommands,
	preCheckInQueries *queries.PreCheckInQueries,
) *PreCheckInHandler {
	return &PreCheckInHandler{
		preCheckInCommands: preCheckInCommands,
		preCheckInQueries:  preCheckInQueries,
	}
}

// @Summary Start pre-check-in
// @Description Verify the booking and email, issue a session token
// @Tags precheckin
// @Accept json
// @Produce json
// @Param request body reqdto.StartPreCheckInRequest true "Start request"
// @Success 200 {object} resdto.StartPreCheckInResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /precheckin/start [post]
func (h *PreCheckInHandler) Start(c *gin.Context) {
	var req reqdto.StartPreCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.preCheckInCommands.Start(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound),
			errors.Is(err, commands.ErrEmailMismatch):
			// Same response for both so booking references cannot be probed.
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.StartPreCheckInResponse{
		Token:      result.Token,
		PreCheckIn: resdto.FromPreCheckIn(result.Draft),
	})
}

// @Summary Get pre-check-in state
// @Description Get the wizard state with per-step progress
// @Tags precheckin
// @Produce json
// @Param bookingId path string true "Booking reference"
// @Success 200 {object} resdto.PreCheckInDetailResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /precheckin/{bookingId} [get]
func (h *PreCheckInHandler) Get(c *gin.Context) {
	view, err := h.preCheckInQueries.Get(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPreCheckInNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Pre-check-in not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPreCheckInView(view))
}

// @Summary Jump to step
// @Description Move the wizard to an arbitrary step
// @Tags precheckin
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking reference"
// @Param request body reqdto.GoToStepRequest true "Target step"
// @Success 200 {object} resdto.PreCheckInResponse
// @Failure 400 {object} map[string]string
// @Router /precheckin/{bookingId}/step [put]
func (h *PreCheckInHandler) GoToStep(c *gin.Context) {
	var req reqdto.GoToStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	draft, err := h.preCheckInCommands.GoToStep(c.Request.Context(), c.Param("bookingId"), req.Step)
	h.respond(c, draft, err)
}

// @Summary Advance a step
// @Tags precheckin
// @Produce json
// @Param bookingId path string true "Booking reference"
// @Success 200 {object} resdto.PreCheckInResponse
// @Router /precheckin/{bookingId}/next [post]
func (h *PreCheckInHandler) Next(c *gin.Context) {
	draft, err := h.preCheckInCommands.Next(c.Request.Context(), c.Param("bookingId"))
	h.respond(c, draft, err)
}

// @Summary Go back a step
// @Tags precheckin
// @Produce json
// @Param bookingId path string true "Booking reference"
// @Success 200 {object} resdto.PreCheckInResponse
// @Router /precheckin/{bookingId}/previous [post]
func (h *PreCheckInHandler) Previous(c *gin.Context) {
	draft, err := h.preCheckInCommands.Previous(c.Request.Context(), c.Param("bookingId"))
	h.respond(c, draft, err)
}

// @Summary Update guest info section
// @Tags precheckin
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking reference"
// @Param request body reqdto.UpdateGuestInfoRequest true "Guest info patch"
// @Success 200 {object} resdto.PreCheckInResponse
// @Failure 400 {object} map[string]string
// @Router /precheckin/{bookingId}/guest-info [patch]
func (h *PreCheckInHandler) UpdateGuestInfo(c *gin.Context) {
	var req reqdto.UpdateGuestInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	draft, err := h.preCheckInCommands.UpdateGuestInfo(c.Request.Context(), c.Param("bookingId"), req.GuestInfo)
	h.respond(c, draft, err)
}

// @Summary Update ID verification section
// @Tags precheckin
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking reference"
// @Param request body reqdto.UpdateIDVerificationRequest true "ID verification patch"
// @Success 200 {object} resdto.PreCheckInResponse
// @Failure 400 {object} map[string]string
// @Router /precheckin/{bookingId}/id-verification [patch]
func (h *PreCheckInHandler) UpdateIDVerification(c *gin.Context) {
	var req reqdto.UpdateIDVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	draft, err := h.preCheckInCommands.UpdateIDVerification(c.Request.Context(), c.Param("bookingId"), req.IDVerification)
	h.respond(c, draft, err)
}

// @Summary Update room selection section
// @Tags precheckin
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking reference"
// @Param request body reqdto.UpdateRoomSelectionRequest true "Room selection"
// @Success 200 {object} resdto.PreCheckInResponse
// @Failure 400 {object} map[string]string
// @Router /precheckin/{bookingId}/room-selection [put]
func (h *PreCheckInHandler) UpdateRoomSelection(c *gin.Context) {
	var req reqdto.UpdateRoomSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	draft, err := h.preCheckInCommands.UpdateRoomSelection(c.Request.Context(), c.Param("bookingId"), req.ToDomain())
	h.respond(c, draft, err)
}

// @Summary Update special requests section
// @Tags precheckin
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking reference"
// @Param request body reqdto.UpdateSpecialRequestsRequest true "Special requests patch"
// @Success 200 {object} resdto.PreCheckInResponse
// @Failure 400 {object} map[string]string
// @Router /precheckin/{bookingId}/special-requests [patch]
func (h *PreCheckInHandler) UpdateSpecialRequests(c *gin.Context) {
	var req reqdto.UpdateSpecialRequestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	draft, err := h.preCheckInCommands.UpdateSpecialRequests(c.Request.Context(), c.Param("bookingId"), req.SpecialRequests)
	h.respond(c, draft, err)
}

// @Summary Sign terms
// @Description Record the signature and accept the terms
// @Tags precheckin
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking reference"
// @Param request body reqdto.SignatureRequest true "Signature"
// @Success 200 {object} resdto.PreCheckInResponse
// @Failure 400 {object} map[string]string
// @Router /precheckin/{bookingId}/signature [put]
func (h *PreCheckInHandler) Sign(c *gin.Context) {
	var req reqdto.SignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	draft, err := h.preCheckInCommands.Sign(c.Request.Context(), c.Param("bookingId"), req.Signature)
	h.respond(c, draft, err)
}

// @Summary Complete pre-check-in
// @Description Finalize the wizard and issue the digital key; idempotent
// @Tags precheckin
// @Produce json
// @Param bookingId path string true "Booking reference"
// @Success 200 {object} resdto.PreCheckInResponse
// @Router /precheckin/{bookingId}/complete [post]
func (h *PreCheckInHandler) Complete(c *gin.Context) {
	draft, err := h.preCheckInCommands.Complete(c.Request.Context(), c.Param("bookingId"))
	h.respond(c, draft, err)
}

func (h *PreCheckInHandler) respond(c *gin.Context, draft *precheckin.Draft, err error) {
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidStep):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid step",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromPreCheckIn(draft))
}

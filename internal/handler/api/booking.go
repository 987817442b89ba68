package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "lumiere-guest-api/internal/handler/dto/request"
	resdto "lumiere-guest-api/internal/handler/dto/response"
	"lumiere-guest-api/internal/handler/middleware"
	"lumiere-guest-api/internal/usecase/commands"
	"lumiere-guest-api/internal/usecase/queries"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  *queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries *queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Set booking draft
// @Description Replace the guest's in-progress booking draft
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetDraftRequest true "Draft request"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/draft [put]
func (h *BookingHandler) SetDraft(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SetDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	draft, err := h.bookingCommands.SetDraft(c.Request.Context(), guestID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, commands.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking details",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraft(draft))
}

// @Summary Get booking draft
// @Description Get the guest's in-progress booking draft
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/draft [get]
func (h *BookingHandler) GetDraft(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.bookingQueries.GetDraft(c.Request.Context(), guestID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrDraftNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No booking draft",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Update booking draft
// @Description Merge partial changes into the draft; no-op when no draft exists
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateDraftRequest true "Draft patch"
// @Success 200 {object} resdto.DraftResponse
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /bookings/draft [patch]
func (h *BookingHandler) UpdateDraft(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	draft, err := h.bookingCommands.UpdateDraft(c.Request.Context(), guestID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, commands.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking details",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	if draft == nil {
		// Nothing to update; the edit is silently dropped.
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDraft(draft))
}

// @Summary Clear booking draft
// @Description Remove the guest's in-progress booking draft
// @Tags bookings
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /bookings/draft [delete]
func (h *BookingHandler) ClearDraft(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := h.bookingCommands.ClearDraft(c.Request.Context(), guestID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Submit booking
// @Description Charge the card and confirm the drafted booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitBookingRequest true "Payment details"
// @Success 201 {object} resdto.SubmitResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.Submit(c.Request.Context(), guestID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoDraft):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No booking draft to submit",
			})
		case errors.Is(err, commands.ErrPaymentDeclined):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Payment declined by your bank",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result.Booking))
}

// @Summary List bookings
// @Description List the guest's confirmed bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQueries.ListByGuest(c.Request.Context(), guestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resps := make([]resdto.BookingListResponse, 0, len(items))
	for i := range items {
		resps = append(resps, *resdto.FromBookingListItem(&items[i]))
	}
	c.JSON(http.StatusOK, resps)
}

// @Summary Get booking
// @Description Get a confirmed booking by reference
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{reference} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.bookingQueries.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil || view.GuestID != guestID {
		switch {
		case err == nil, errors.Is(err, queries.ErrBookingNotFound):
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

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{reference}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	cancelled, err := h.bookingCommands.Cancel(c.Request.Context(), guestID, c.Param("reference"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrBookingNotCancellable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking can no longer be cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reference":   cancelled.Reference,
		"status":      string(cancelled.Status),
		"cancelledAt": cancelled.CancelledAt,
	})
}

package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"lumiere-guest-api/internal/domain/room"
	resdto "lumiere-guest-api/internal/handler/dto/response"
	"lumiere-guest-api/internal/usecase/queries"
)

type RoomHandler struct {
	roomQueries *queries.RoomQueries
}

func NewRoomHandler(roomQueries *queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomQueries: roomQueries,
	}
}

// @Summary List rooms
// @Description List the room catalog with optional filters
// @Tags rooms
// @Produce json
// @Param category query string false "Room category"
// @Param guests query int false "Minimum capacity"
// @Param min_price_cents query int false "Minimum nightly rate"
// @Param max_price_cents query int false "Maximum nightly rate"
// @Param sort query string false "Sort key (price_asc, price_desc, name)"
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	filter := queries.RoomFilter{
		Sort: c.Query("sort"),
	}
	if v := c.Query("category"); v != "" {
		cat, err := room.NewCategory(strings.ToLower(v))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid category parameter",
			})
			return
		}
		s := cat.String()
		filter.Category = &s
	}
	if v := c.Query("guests"); v != "" {
		guests, err := strconv.Atoi(v)
		if err != nil || guests < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid guests parameter",
			})
			return
		}
		filter.Guests = &guests
	}
	if v := c.Query("min_price_cents"); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid min_price_cents parameter",
			})
			return
		}
		filter.MinPriceCents = &cents
	}
	if v := c.Query("max_price_cents"); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid max_price_cents parameter",
			})
			return
		}
		filter.MaxPriceCents = &cents
	}

	views, err := h.roomQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Description Get a single catalog room by ID
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	view, err := h.roomQueries.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

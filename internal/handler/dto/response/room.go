package response

import (
	"github.com/jinzhu/copier"

	"lumiere-guest-api/internal/usecase/queries"
)

type RoomResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Description      string   `json:"description"`
	Image            string   `json:"image"`
	NightlyRateCents int64    `json:"nightlyRateCents"`
	MaxGuests        int      `json:"maxGuests"`
	SizeSqm          int      `json:"sizeSqm"`
	Amenities        []string `json:"amenities"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromRoomViews(views []queries.RoomView) []RoomResponse {
	resps := make([]RoomResponse, 0, len(views))
	for i := range views {
		resps = append(resps, *FromRoomView(&views[i]))
	}
	return resps
}

package catalog

import (
	"context"
	"fmt"

	"lumiere-guest-api/internal/domain/room"
	"lumiere-guest-api/internal/infra"
)

// StaticRoomStore serves the fixed Grand Lumière inventory. The catalog is
// the read-only source of truth for selectable rooms; there is no admin
// surface that mutates it.
type StaticRoomStore struct {
	rooms []room.Room
	byID  map[string]*room.Room
}

func NewStaticRoomStore() *StaticRoomStore {
	s := &StaticRoomStore{rooms: seedRooms()}
	s.byID = make(map[string]*room.Room, len(s.rooms))
	for i := range s.rooms {
		r := &s.rooms[i]
		if err := r.Validate(); err != nil {
			panic(fmt.Sprintf("catalog: seed room %q: %v", r.ID, err))
		}
		s.byID[r.ID] = r
	}
	return s
}

func (s *StaticRoomStore) FindAll(_ context.Context) ([]room.Room, error) {
	out := make([]room.Room, len(s.rooms))
	copy(out, s.rooms)
	return out, nil
}

func (s *StaticRoomStore) FindByID(_ context.Context, id string) (*room.Room, error) {
	r, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	cp := *r
	return &cp, nil
}

func seedRooms() []room.Room {
	return []room.Room{
		{
			ID: "classic-garden", Name: "Classic Garden Room", Category: room.CategoryStandard,
			Description:      "Garden-facing classic room with a queen bed and writing desk.",
			Image:            "/images/rooms/classic-garden.jpg",
			NightlyRateCents: 18000, MaxGuests: 2, SizeSqm: 24,
			Amenities: []string{"queen bed", "garden view", "rain shower", "minibar"},
		},
		{
			ID: "classic-courtyard", Name: "Classic Courtyard Room", Category: room.CategoryStandard,
			Description:      "Quiet courtyard-facing room on the second floor.",
			Image:            "/images/rooms/classic-courtyard.jpg",
			NightlyRateCents: 16500, MaxGuests: 2, SizeSqm: 22,
			Amenities: []string{"queen bed", "courtyard view", "rain shower"},
		},
		{
			ID: "classic-twin", Name: "Classic Twin Room", Category: room.CategoryStandard,
			Description:      "Two single beds, ideal for friends travelling together.",
			Image:            "/images/rooms/classic-twin.jpg",
			NightlyRateCents: 17000, MaxGuests: 2, SizeSqm: 24,
			Amenities: []string{"twin beds", "garden view", "bathtub"},
		},
		{
			ID: "deluxe-sea", Name: "Deluxe Sea View", Category: room.CategoryDeluxe,
			Description:      "King bed and a private balcony over the Mediterranean.",
			Image:            "/images/rooms/deluxe-sea.jpg",
			NightlyRateCents: 26000, MaxGuests: 2, SizeSqm: 32,
			Amenities: []string{"king bed", "sea view", "balcony", "espresso machine"},
		},
		{
			ID: "deluxe-terrace", Name: "Deluxe Terrace Room", Category: room.CategoryDeluxe,
			Description:      "Ground-floor deluxe room opening onto a private terrace.",
			Image:            "/images/rooms/deluxe-terrace.jpg",
			NightlyRateCents: 24500, MaxGuests: 3, SizeSqm: 34,
			Amenities: []string{"king bed", "private terrace", "bathtub", "espresso machine"},
		},
		{
			ID: "deluxe-family", Name: "Deluxe Family Room", Category: room.CategoryDeluxe,
			Description:      "Connecting layout with a king bed and a sofa bed for two.",
			Image:            "/images/rooms/deluxe-family.jpg",
			NightlyRateCents: 28000, MaxGuests: 4, SizeSqm: 40,
			Amenities: []string{"king bed", "sofa bed", "sea view", "two bathrooms"},
		},
		{
			ID: "junior-suite", Name: "Junior Suite", Category: room.CategorySuite,
			Description:      "Open-plan suite with a lounge corner and sunset views.",
			Image:            "/images/rooms/junior-suite.jpg",
			NightlyRateCents: 34000, MaxGuests: 2, SizeSqm: 45,
			Amenities: []string{"king bed", "lounge corner", "sea view", "walk-in shower"},
		},
		{
			ID: "corner-suite", Name: "Corner Suite", Category: room.CategorySuite,
			Description:      "Corner suite with wrap-around windows and a dining nook.",
			Image:            "/images/rooms/corner-suite.jpg",
			NightlyRateCents: 38500, MaxGuests: 3, SizeSqm: 52,
			Amenities: []string{"king bed", "dining nook", "panoramic view", "bathtub"},
		},
		{
			ID: "garden-suite", Name: "Garden Suite", Category: room.CategorySuite,
			Description:      "Private garden suite with outdoor bathtub and pergola.",
			Image:            "/images/rooms/garden-suite.jpg",
			NightlyRateCents: 42000, MaxGuests: 2, SizeSqm: 55,
			Amenities: []string{"king bed", "private garden", "outdoor bathtub"},
		},
		{
			ID: "lumiere-suite", Name: "Lumière Suite", Category: room.CategorySignature,
			Description:      "The signature suite: separate living room, sea-facing terrace and butler service.",
			Image:            "/images/rooms/lumiere-suite.jpg",
			NightlyRateCents: 68000, MaxGuests: 4, SizeSqm: 85,
			Amenities: []string{"king bed", "living room", "terrace", "butler service"},
		},
		{
			ID: "penthouse", Name: "Penthouse Apartment", Category: room.CategorySignature,
			Description:      "Top-floor apartment with two bedrooms and a rooftop plunge pool.",
			Image:            "/images/rooms/penthouse.jpg",
			NightlyRateCents: 95000, MaxGuests: 6, SizeSqm: 120,
			Amenities: []string{"two bedrooms", "rooftop pool", "full kitchen", "butler service"},
		},
		{
			ID: "atelier-loft", Name: "Atelier Loft", Category: room.CategorySignature,
			Description:      "Converted artist loft with double-height windows and a mezzanine bed.",
			Image:            "/images/rooms/atelier-loft.jpg",
			NightlyRateCents: 52000, MaxGuests: 2, SizeSqm: 60,
			Amenities: []string{"mezzanine bed", "double-height windows", "record player"},
		},
	}
}

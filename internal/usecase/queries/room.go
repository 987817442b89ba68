package queries

import (
	"context"
	"sort"
	"strings"

	"lumiere-guest-api/internal/domain/room"
	"lumiere-guest-api/internal/infra"
	"lumiere-guest-api/internal/pkg/errs"
)

var ErrRoomNotFound = errs.New("room not found")

type RoomReadStore interface {
	FindAll(ctx context.Context) ([]room.Room, error)
	FindByID(ctx context.Context, id string) (*room.Room, error)
}

// RoomFilter narrows the catalog listing. Zero-value fields are ignored.
type RoomFilter struct {
	Category      *string
	Guests        *int
	MinPriceCents *int64
	MaxPriceCents *int64
	Sort          string // price_asc | price_desc | name
}

type RoomQueries struct {
	rooms RoomReadStore
}

func NewRoomQueries(rooms RoomReadStore) *RoomQueries {
	return &RoomQueries{rooms: rooms}
}

func (q *RoomQueries) List(ctx context.Context, filter RoomFilter) ([]RoomView, error) {
	all, err := q.rooms.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rooms")
	}

	views := make([]RoomView, 0, len(all))
	for _, r := range all {
		if !matchRoom(r, filter) {
			continue
		}
		views = append(views, toRoomView(r))
	}
	sortRooms(views, filter.Sort)
	return views, nil
}

func (q *RoomQueries) Get(ctx context.Context, id string) (*RoomView, error) {
	r, err := q.rooms.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, errs.Wrap(err, "failed to get room")
	}
	v := toRoomView(*r)
	return &v, nil
}

func matchRoom(r room.Room, f RoomFilter) bool {
	if f.Category != nil && !strings.EqualFold(string(r.Category), *f.Category) {
		return false
	}
	if f.Guests != nil && !r.Fits(*f.Guests) {
		return false
	}
	if f.MinPriceCents != nil && r.NightlyRateCents < *f.MinPriceCents {
		return false
	}
	if f.MaxPriceCents != nil && r.NightlyRateCents > *f.MaxPriceCents {
		return false
	}
	return true
}

func sortRooms(views []RoomView, key string) {
	switch key {
	case "price_asc":
		sort.SliceStable(views, func(i, j int) bool { return views[i].NightlyRateCents < views[j].NightlyRateCents })
	case "price_desc":
		sort.SliceStable(views, func(i, j int) bool { return views[i].NightlyRateCents > views[j].NightlyRateCents })
	case "name":
		sort.SliceStable(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	}
}

func toRoomView(r room.Room) RoomView {
	return RoomView{
		ID:               r.ID,
		Name:             r.Name,
		Category:         string(r.Category),
		Description:      r.Description,
		Image:            r.Image,
		NightlyRateCents: r.NightlyRateCents,
		MaxGuests:        r.MaxGuests,
		SizeSqm:          r.SizeSqm,
		Amenities:        r.Amenities,
	}
}

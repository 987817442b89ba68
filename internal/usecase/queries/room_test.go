//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere-guest-api/internal/infra/catalog"
	"lumiere-guest-api/internal/usecase/queries"
)

func newRoomQueries() *queries.RoomQueries {
	return queries.NewRoomQueries(catalog.NewStaticRoomStore())
}

func TestRoomQueries_List_Unfiltered(t *testing.T) {
	views, err := newRoomQueries().List(context.Background(), queries.RoomFilter{})

	require.NoError(t, err)
	assert.Len(t, views, 12)
}

func TestRoomQueries_List_FilterByCategory(t *testing.T) {
	category := "Suite"
	views, err := newRoomQueries().List(context.Background(), queries.RoomFilter{Category: &category})

	require.NoError(t, err)
	require.Len(t, views, 3)
	for _, v := range views {
		assert.Equal(t, "suite", v.Category)
	}
}

func TestRoomQueries_List_FilterByGuests(t *testing.T) {
	guests := 4
	views, err := newRoomQueries().List(context.Background(), queries.RoomFilter{Guests: &guests})

	require.NoError(t, err)
	require.Len(t, views, 3)
	for _, v := range views {
		assert.GreaterOrEqual(t, v.MaxGuests, 4)
	}
}

func TestRoomQueries_List_FilterByPriceBand(t *testing.T) {
	min, max := int64(20000), int64(40000)
	views, err := newRoomQueries().List(context.Background(), queries.RoomFilter{
		MinPriceCents: &min,
		MaxPriceCents: &max,
	})

	require.NoError(t, err)
	require.NotEmpty(t, views)
	for _, v := range views {
		assert.GreaterOrEqual(t, v.NightlyRateCents, min)
		assert.LessOrEqual(t, v.NightlyRateCents, max)
	}
}

func TestRoomQueries_List_SortByPrice(t *testing.T) {
	q := newRoomQueries()

	asc, err := q.List(context.Background(), queries.RoomFilter{Sort: "price_asc"})
	require.NoError(t, err)
	assert.Equal(t, "classic-courtyard", asc[0].ID)
	assert.Equal(t, "penthouse", asc[len(asc)-1].ID)

	desc, err := q.List(context.Background(), queries.RoomFilter{Sort: "price_desc"})
	require.NoError(t, err)
	assert.Equal(t, "penthouse", desc[0].ID)
}

func TestRoomQueries_List_SortByName(t *testing.T) {
	views, err := newRoomQueries().List(context.Background(), queries.RoomFilter{Sort: "name"})

	require.NoError(t, err)
	assert.Equal(t, "Atelier Loft", views[0].Name)
}

func TestRoomQueries_Get(t *testing.T) {
	view, err := newRoomQueries().Get(context.Background(), "deluxe-terrace")

	require.NoError(t, err)
	assert.Equal(t, "Deluxe Terrace Room", view.Name)
	assert.Equal(t, int64(24500), view.NightlyRateCents)
	assert.Equal(t, 3, view.MaxGuests)
}

func TestRoomQueries_Get_NotFound(t *testing.T) {
	_, err := newRoomQueries().Get(context.Background(), "presidential-igloo")

	require.ErrorIs(t, err, queries.ErrRoomNotFound)
}

//go:build unit

package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere-guest-api/internal/infra"
	"lumiere-guest-api/internal/infra/catalog"
)

func TestStaticRoomStore(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewStaticRoomStore()

	t.Run("seeds twelve valid rooms with unique ids", func(t *testing.T) {
		rooms, err := store.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, rooms, 12)

		seen := make(map[string]bool, len(rooms))
		for _, r := range rooms {
			assert.NoError(t, r.Validate(), "room %s", r.ID)
			assert.False(t, seen[r.ID], "duplicate room id %s", r.ID)
			seen[r.ID] = true
		}
	})

	t.Run("find by id returns a copy", func(t *testing.T) {
		r, err := store.FindByID(ctx, "deluxe-terrace")
		require.NoError(t, err)
		assert.Equal(t, int64(24500), r.NightlyRateCents)

		r.NightlyRateCents = 1
		again, err := store.FindByID(ctx, "deluxe-terrace")
		require.NoError(t, err)
		assert.Equal(t, int64(24500), again.NightlyRateCents)
	})

	t.Run("unknown id is a not-found repository error", func(t *testing.T) {
		_, err := store.FindByID(ctx, "presidential-bunker")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"lumiere-guest-api/internal/infra/kv"
	"lumiere-guest-api/internal/pkg/config"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

// NewStore selects the key-value driver. Badger keeps everything in one
// process; postgres is for deployments that need shared state.
func NewStore(lc fx.Lifecycle, cfg config.Config) (kv.Store, error) {
	var store kv.Store
	var err error

	switch cfg.Storage.Driver {
	case "badger":
		store, err = kv.NewBadgerStore(cfg.Storage.BadgerPath)
	case "postgres":
		store, err = kv.NewPostgresStore(context.Background(), cfg.Storage)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

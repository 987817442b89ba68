package bootstrap

import (
	"go.uber.org/fx"

	"lumiere-guest-api/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		func(cfg config.Config) config.PreCheckInConfig { return cfg.PreCheckIn },
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
	),
)

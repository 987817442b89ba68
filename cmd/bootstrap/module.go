package bootstrap

import (
	"go.uber.org/fx"

	"lumiere-guest-api/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	JWTModule,
	MetricsModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

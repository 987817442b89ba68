package bootstrap

import (
	"go.uber.org/fx"

	"lumiere-guest-api/internal/pkg/metrics"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
	),
)

func NewMetrics() *metrics.Metrics {
	return metrics.NewMetrics("lumiere")
}

package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stitchline/vestra/internal/observability/metrics"
	"go.uber.org/fx"
)

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	return reg
}

func newMetrics(reg *prometheus.Registry) (*metrics.Metrics, error) {
	return metrics.New(reg)
}

var Module = fx.Module("observability",
	fx.Provide(newRegistry),
	fx.Provide(newMetrics),
)

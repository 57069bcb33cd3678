package metrics

import (
	"salesinsight/internal/domain/service"

	"go.uber.org/fx"
)

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewFromConfig,
		func(m *Metrics) service.MetricsRecorder { return m },
	),
)

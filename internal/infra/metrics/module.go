package metrics

import (
	"strik/internal/domain/service"

	"go.uber.org/fx"
)

// Module provides the registry, the recorder and its service.MetricsRecorder binding
var Module = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		NewRecorder,
		func(r *Recorder) service.MetricsRecorder { return r },
	),
)

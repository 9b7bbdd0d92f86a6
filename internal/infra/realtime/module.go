package realtime

import (
	"mealmarket/internal/domain/service"

	"go.uber.org/fx"
)

// Module provides the hub and the fan-out as both publisher and backplane receiver.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewHub,
		NewFanout,
		func(f *Fanout) service.RealtimePublisher { return f },
		func(f *Fanout) service.RealtimeReceiver { return f },
	),
)

package handler

import "go.uber.org/fx"

// Module provides the http routes shared by every transport.
func Module() fx.Option {
	return fx.Module("handler",
		fx.Provide(NewDeviceHandler),
		fx.Provide(NewDeviceRoute),
		fx.Provide(NewHealthRoute),
		fx.Provide(NewMetricsRoute),
	)
}

package dispatch

import "go.uber.org/fx"

// Module provides the dispatcher and its routes.
func Module(config Config) fx.Option {
	return fx.Module(
		"dispatch",

		// provide dispatch config
		fx.Supply(config),

		// provide device error reporter
		fx.Provide(NewReporter),

		// provide route table
		fx.Provide(NewDeviceRoutes),

		// provide dispatcher
		fx.Provide(NewDispatcher),
	)
}

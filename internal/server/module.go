package server

import (
	"go.uber.org/fx"

	"github.com/esplog/esplog/util/logging"
)

// Module serves the grouped http handlers on the configured address
// for the lifetime of the app.
func Module(config HttpConfig) fx.Option {
	return fx.Module("server",
		// rename logger for module
		logging.DecorateLogger("server"),
		// provide config
		fx.Supply(config),
		// provide server
		fx.Provide(NewLifecycleServer),
		// invoke server
		fx.Invoke(func(*HttpServer) {}),
	)
}

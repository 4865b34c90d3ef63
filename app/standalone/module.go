package standalone

import (
	"go.uber.org/fx"

	"github.com/esplog/esplog/handler"
	"github.com/esplog/esplog/internal/server"
	"github.com/esplog/esplog/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide device routes
		handler.Module(),
		// provide server
		server.Module(config.HttpConfig),
	)
}

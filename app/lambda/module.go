package lambda

import (
	"go.uber.org/fx"

	"github.com/esplog/esplog/handler"
	"github.com/esplog/esplog/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"lambda",
		// provide lambda config
		fx.Supply(config),
		// rename logger for module
		logging.DecorateLogger("lambda"),
		// provide device routes
		handler.Module(),
		// provide lambda handler
		fx.Provide(NewLifecycleHandler),
		// start handler with the app
		fx.Invoke(func(*LambdaHandler) {}),
	)
}

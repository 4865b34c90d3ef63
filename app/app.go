package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/esplog/esplog/config"
	"github.com/esplog/esplog/dispatch"
	"github.com/esplog/esplog/internal/shell"
	"github.com/esplog/esplog/util/conf"
	"github.com/esplog/esplog/util/logging"
)

func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
		// provide dispatcher
		dispatch.Module(config.Dispatch),
	)

	return shell.New(log, sharedModule), nil
}

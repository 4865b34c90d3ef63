package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/esplog/esplog/app"
	"github.com/esplog/esplog/app/standalone"
	"github.com/esplog/esplog/util/conf"
	"github.com/esplog/esplog/util/logging"
)

var (
	serveCmdDescription = `The serve command starts a http server and waits for devices
	to post telemetry. Every request is logged and answered with a
	{"response": "..."} envelope.

	The command will launch the http server and blocks until an
	interrupt signal is received.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start a http server and listen for device requests.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The host to listen on.",
				Value:    "0.0.0.0",
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on. Has to match the devices' base url.",
				Value:    8000,
				Category: "http",
				EnvVars:  []string{"HTTP_PORT"},
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
			&cli.DurationFlag{
				Name:     "read-timeout",
				Usage:    "The maximum duration for reading a request. 0 disables the timeout.",
				Category: "http",
				EnvVars:  []string{"HTTP_READ_TIMEOUT"},
			},
			&cli.Int64Flag{
				Name:     "max-body-bytes",
				Usage:    "The largest request body accepted.",
				Category: "http",
				EnvVars:  []string{"HTTP_MAX_BODY_BYTES"},
			},
		},
	}
)

func serveAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[standalone.Config](parseOptions(ctx, standalone.DefaultConfig))
	if err != nil {
		return err
	}

	log.Info("starting http server")

	return app.Run(ctx.Context, standalone.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/esplog/esplog/config"
	"github.com/esplog/esplog/internal/shell"
	"github.com/esplog/esplog/util/conf"
	"github.com/esplog/esplog/util/logging"
)

var (
	appName  = "esplog"
	appUsage = `Receive JSON telemetry posted by ESP32 sensor devices and
log it, answering every request with a JSON acknowledgment.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			// general flags
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "set the log format. Options: production, development.",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.PathFlag{
				Name:    "config",
				Usage:   "load configuration from a json file.",
				Aliases: []string{"f"},
				EnvVars: []string{"ESPLOG_CONFIG"},
			},
			&cli.PathFlag{
				Name:    "env-file",
				Usage:   "load ESPLOG_ prefixed configuration from a dotenv file.",
				EnvVars: []string{"ESPLOG_ENV_FILE"},
			},
			// dispatch flags
			&cli.BoolFlag{
				Name:     "schema-check",
				Usage:    "log device payloads that do not match the expected schema.",
				Category: "dispatch",
				EnvVars:  []string{"DISPATCH_SCHEMA_CHECK"},
			},
			&cli.BoolFlag{
				Name:     "report-device-errors",
				Usage:    "forward /api/error reports to sentry. Requires SENTRY_DSN.",
				Category: "dispatch",
				EnvVars:  []string{"DISPATCH_REPORT_DEVICE_ERRORS"},
			},
		},
		Before: func(ctx *cli.Context) error {
			// parse config using defaults, files, env and flags
			cfg, err := conf.Parse[config.Config](parseOptions(ctx, config.DefaultConfig))
			if err != nil {
				return err
			}

			// create the logger
			log, err := logging.NewLogger(logging.Options{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
				App:    appName,
			})
			if err != nil {
				return err
			}

			// inject logger into cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)

			// inject the config into the cli context
			ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

			return nil
		},
		After: func(ctx *cli.Context) error {
			log, err := logging.LoggerFromContext(ctx.Context)
			if err != nil {
				return err
			}

			log.Sync()

			return nil
		},
	}
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time
}

// Execute runs the cli and returns the process exit code.
func Execute(params ExecuteParams) int {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	return run(context.Background(), os.Args)
}

func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)

	// if app exited without error, return
	if err == nil {
		return 0
	}

	// if app exited with ExitError, exit with given exit code
	var exitErr *shell.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}

	fmt.Printf("exit error: %s\n", err.Error())

	// otherwise, exit with exit code 1
	return 1
}

// parseOptions returns the options shared by all config parsing,
// which differ only in their defaults.
func parseOptions(ctx *cli.Context, defaults conf.DefaultConfig) conf.ParseOptions {
	var log = logging.NopIfMissing(ctx.Context)

	return conf.ParseOptions{
		Cli: ctx,
		CliMap: map[string]string{
			"schema-check":         "dispatch.schema_check",
			"report-device-errors": "dispatch.report_device_errors",
		},
		Defaults:  defaults,
		EnvPrefix: config.EnvPrefix,
		FileName:  ctx.Path("config"),
		EnvFile:   ctx.Path("env-file"),
		Log:       log,
	}
}

package config

import (
	"github.com/esplog/esplog/dispatch"
	"github.com/esplog/esplog/util/conf"
)

// EnvPrefix is the prefix of env vars read into the config.
const EnvPrefix = "ESPLOG_"

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// Dispatch is the device request dispatcher configuration
	Dispatch dispatch.Config `conf:"dispatch"`
}

var DefaultConfig = merge(
	conf.DefaultConfig{
		"log_level":  "info",
		"log_format": "production",
	},
	conf.MergeDefaults("dispatch", conf.DefaultConfig{
		"schema_check":         true,
		"report_device_errors": false,
	}),
)

func merge(defaults ...conf.DefaultConfig) conf.DefaultConfig {
	merged := conf.DefaultConfig{}
	for _, d := range defaults {
		for k, v := range d {
			merged[k] = v
		}
	}

	return merged
}

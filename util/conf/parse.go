package conf

import (
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/esplog/esplog/util/cliflags"
)

// DefaultConfig holds default values, keyed by their delimited
// config path.
type DefaultConfig map[string]any

type ParseOptions struct {
	// Cli is the cli.Context from urfave/cli
	Cli *cli.Context

	// CliMap is a map of cli flag names to config keys
	CliMap map[string]string

	// Defaults is a map of default values
	Defaults DefaultConfig

	// EnvPrefix is the prefix for env vars
	EnvPrefix string

	// FileName is the name of the json configuration file to load
	FileName string

	// EnvFile is the name of a dotenv file to load. Its keys are
	// treated like env vars.
	EnvFile string

	// Log is the logger to use
	Log *zap.Logger
}

// Parse loads the config in order of increasing precedence: defaults,
// json file, dotenv file, env vars, cli flags.
func Parse[C any](opt ParseOptions) (C, error) {
	var config C

	var log *zap.Logger
	if opt.Log != nil {
		log = opt.Log
	} else {
		log = zap.NewNop()
	}

	k := koanf.New(".")

	if opt.Defaults != nil {
		if err := k.Load(confmap.Provider(opt.Defaults, "."), nil); err != nil {
			log.Error("error loading defaults", zap.Error(err))
			return config, err
		}
	}

	if opt.FileName != "" {
		if err := k.Load(file.Provider(opt.FileName), json.Parser()); err != nil {
			log.Error("error parsing file",
				zap.Error(err),
				zap.String("file", opt.FileName),
			)
			return config, err
		}
	}

	if opt.EnvFile != "" {
		if err := loadEnvFile(k, opt.EnvFile, opt.EnvPrefix); err != nil {
			log.Error("error parsing env file",
				zap.Error(err),
				zap.String("file", opt.EnvFile),
			)
			return config, err
		}
	}

	transformPrefixedEnv := func(s string) string {
		return transformEnv(s, opt.EnvPrefix)
	}

	if err := k.Load(env.Provider(opt.EnvPrefix, ".", transformPrefixedEnv), nil); err != nil {
		log.Error("error parsing env vars", zap.Error(err))
		return config, err
	}

	if opt.Cli != nil {
		transformFlag := func(s string) string {
			if opt.CliMap != nil {
				if name, ok := opt.CliMap[s]; ok {
					return name
				}
			}

			// replace - with _
			return strings.ReplaceAll(strings.ToLower(s), "-", "_")
		}

		if err := k.Load(cliflags.Provider(opt.Cli, ".", transformFlag), nil); err != nil {
			log.Error("error parsing cli flags", zap.Error(err))
			return config, err
		}
	}

	if err := k.UnmarshalWithConf("", &config, koanf.UnmarshalConf{Tag: "conf"}); err != nil {
		log.Error("error unmarshalling config", zap.Error(err))
		return config, err
	}

	return config, nil
}

// loadEnvFile loads a dotenv file, applying the same key transform
// as for env vars. Keys without the prefix are skipped.
func loadEnvFile(k *koanf.Koanf, name, prefix string) error {
	data, err := file.Provider(name).ReadBytes()
	if err != nil {
		return err
	}

	values, err := dotenv.Parser().Unmarshal(data)
	if err != nil {
		return err
	}

	transformed := make(map[string]any, len(values))
	for key, value := range values {
		if !strings.HasPrefix(key, prefix) {
			continue
		}

		if name := transformEnv(key, prefix); name != "" {
			transformed[name] = value
		}
	}

	return k.Load(confmap.Provider(transformed, "."), nil)
}

// transformEnv maps ESPLOG_HTTP__PORT style names to http.port style
// keys, given the prefix ESPLOG_.
func transformEnv(s, prefix string) string {
	trimmed := strings.TrimPrefix(s, prefix)
	// allow specifying nested env vars w/ __
	return strings.ReplaceAll(strings.ToLower(trimmed), "__", ".")
}

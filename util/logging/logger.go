package logging

import (
	"go.uber.org/zap"
)

const (
	FormatProduction  = "production"
	FormatDevelopment = "development"
)

type Options struct {
	// Level is the minimum enabled level. Invalid or empty levels
	// fall back to info.
	Level string

	// Format selects json (production) or console (development) output.
	Format string

	// App is attached to every entry as the app field.
	App string
}

// NewLogger builds the root logger. Entries go to stdout, which is
// where the device log is expected.
func NewLogger(opts Options) (*zap.Logger, error) {
	var config zap.Config
	if opts.Format == FormatDevelopment {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	if opts.App != "" {
		config.InitialFields = map[string]any{
			"app": opts.App,
		}
	}

	config.Level = ParseLevel(opts.Level)

	return config.Build()
}

func ParseLevel(lvl string) zap.AtomicLevel {
	if atom, err := zap.ParseAtomicLevel(lvl); err == nil && lvl != "" {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}

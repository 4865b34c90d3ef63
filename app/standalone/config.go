package standalone

import (
	"time"

	"github.com/esplog/esplog/internal/server"
	"github.com/esplog/esplog/util/conf"
)

type Config struct {
	// HttpConfig represents the configuration for the HTTP server.
	HttpConfig server.HttpConfig `conf:",squash"`
}

// DefaultConfig listens on all interfaces, on the port the device
// firmware posts to.
var DefaultConfig = conf.DefaultConfig{
	"host":           "0.0.0.0",
	"port":           8000,
	"h2c":            false,
	"read_timeout":   (30 * time.Second).String(),
	"max_body_bytes": 1 << 20,
}

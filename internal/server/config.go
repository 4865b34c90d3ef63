package server

import (
	"net"
	"strconv"
	"time"
)

type HttpConfig struct {
	// Host is the interface to listen on.
	Host string `conf:"host"`

	// Port is the port to listen on. It has to match the port in the
	// base url the devices are flashed with.
	Port int `conf:"port"`

	// H2c enables HTTP/2 cleartext upgrades.
	H2c bool `conf:"h2c"`

	// ReadTimeout bounds reading a whole request, body included.
	// Zero disables the timeout.
	ReadTimeout time.Duration `conf:"read_timeout"`

	// MaxBodyBytes is the largest request body accepted.
	MaxBodyBytes int64 `conf:"max_body_bytes"`
}

// Address returns the host:port pair the server listens on.
func (c HttpConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

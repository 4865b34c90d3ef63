package dispatch

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

const (
	PathTemperature = "/api/temperature"
	PathPing        = "/api/ping"
	PathError       = "/api/error"
)

// RouteFunc handles a decoded payload and returns the status code and
// envelope message to respond with.
type RouteFunc func(ctx context.Context, log *zap.Logger, payload Payload) (int, string)

// Routes maps exact request paths to their handlers.
type Routes map[string]RouteFunc

type deviceRoutes struct {
	reporter Reporter
}

// NewDeviceRoutes returns the routes served to devices.
func NewDeviceRoutes(reporter Reporter) Routes {
	r := &deviceRoutes{reporter: reporter}

	return Routes{
		PathTemperature: r.temperature,
		PathPing:        r.ping,
		PathError:       r.deviceError,
	}
}

func (r *deviceRoutes) temperature(_ context.Context, log *zap.Logger, payload Payload) (int, string) {
	log.Info("temperature reading",
		zap.Reflect("value", payload.GetOr("value", nil)),
		zap.Reflect("timestamp", payload.GetOr("timestamp", nil)),
	)

	return http.StatusOK, "Data received"
}

func (r *deviceRoutes) ping(_ context.Context, log *zap.Logger, _ Payload) (int, string) {
	log.Info("received ping")
	defer log.Info("responded with pong")

	return http.StatusOK, "pong"
}

func (r *deviceRoutes) deviceError(ctx context.Context, log *zap.Logger, payload Payload) (int, string) {
	message := payload.GetOr("error", nil)

	log.Info("device error", zap.Reflect("error", message))
	r.reporter.ReportDeviceError(ctx, message)

	return http.StatusOK, "Error logged"
}

func unknownEndpoint(context.Context, *zap.Logger, Payload) (int, string) {
	return http.StatusNotFound, "Unknown endpoint"
}

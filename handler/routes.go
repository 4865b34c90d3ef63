package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/esplog/esplog/internal/server"
)

// NewDeviceRoute catches every path, so unknown endpoints still reach
// the dispatcher and get its 404 envelope.
func NewDeviceRoute(handler *DeviceHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("/", handler)
}

func NewHealthRoute() server.HttpHandlerResult {
	return server.AsHttpHandler("GET /health", http.HandlerFunc(HealthHandler))
}

func NewMetricsRoute() server.HttpHandlerResult {
	return server.AsHttpHandler("GET /metrics", promhttp.Handler())
}

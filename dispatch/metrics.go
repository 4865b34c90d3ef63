package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const unknownRoute = "unknown"

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "esplog",
			Subsystem: "dispatch",
			Name:      "requests_total",
			Help:      "Total device requests dispatched",
		},
		[]string{"route", "status"},
	)

	payloadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "esplog",
			Subsystem: "dispatch",
			Name:      "payload_bytes",
			Help:      "Size of device request bodies",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
		},
	)
)

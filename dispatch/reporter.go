package dispatch

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Reporter forwards error reports received from devices.
type Reporter interface {
	ReportDeviceError(ctx context.Context, message any)
}

type ReporterParams struct {
	fx.In

	Config Config
	Log    *zap.Logger
}

// NewReporter returns a Sentry backed reporter if device error
// reporting is enabled and a Sentry client is bound to the current hub.
// Otherwise reports are dropped.
func NewReporter(params ReporterParams) Reporter {
	if !params.Config.ReportDeviceErrors {
		return nopReporter{}
	}

	hub := sentry.CurrentHub()
	if hub.Client() == nil {
		params.Log.Warn("device error reporting enabled, but sentry is not configured")
		return nopReporter{}
	}

	return NewSentryReporter(hub)
}

type nopReporter struct{}

func (nopReporter) ReportDeviceError(context.Context, any) {}

type SentryReporter struct {
	hub *sentry.Hub
}

func NewSentryReporter(hub *sentry.Hub) *SentryReporter {
	return &SentryReporter{hub: hub}
}

func (r *SentryReporter) ReportDeviceError(ctx context.Context, message any) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = r.hub.Clone()
	}

	text := "device reported an error without a message"
	if message != nil {
		text = fmt.Sprint(message)
	}

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)
		scope.SetTag("route", PathError)
		scope.SetTag("source", "device")
		hub.CaptureMessage(text)
	})
}

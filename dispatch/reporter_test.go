package dispatch

import (
	"context"
	"sync"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCapturingHub(t *testing.T) (*sentry.Hub, func() []*sentry.Event) {
	var (
		mu     sync.Mutex
		events []*sentry.Event
	)

	client, err := sentry.NewClient(sentry.ClientOptions{
		SampleRate: 1.0,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, event)
			return nil
		},
	})
	require.NoError(t, err)

	captured := func() []*sentry.Event {
		mu.Lock()
		defer mu.Unlock()
		return append([]*sentry.Event(nil), events...)
	}

	return sentry.NewHub(client, sentry.NewScope()), captured
}

func TestSentryReporter_ReportDeviceError(t *testing.T) {
	hub, captured := newCapturingHub(t)

	NewSentryReporter(hub).ReportDeviceError(context.Background(), "sensor fault")

	events := captured()
	require.Len(t, events, 1)
	assert.Equal(t, "sensor fault", events[0].Message)
	assert.Equal(t, sentry.LevelError, events[0].Level)
	assert.Equal(t, PathError, events[0].Tags["route"])
}

func TestSentryReporter_ReportDeviceError_NoMessage(t *testing.T) {
	hub, captured := newCapturingHub(t)

	NewSentryReporter(hub).ReportDeviceError(context.Background(), nil)

	events := captured()
	require.Len(t, events, 1)
	assert.Equal(t, "device reported an error without a message", events[0].Message)
}

func TestNewReporter_Disabled(t *testing.T) {
	reporter := NewReporter(ReporterParams{
		Config: Config{ReportDeviceErrors: false},
		Log:    zap.NewNop(),
	})

	assert.IsType(t, nopReporter{}, reporter)
}

package shell

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/zap/zaptest"
)

func shutdownWith(code int) fx.Option {
	return fx.Invoke(func(lc fx.Lifecycle, shutdowner fx.Shutdowner) {
		lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				return shutdowner.Shutdown(fx.ExitCode(code))
			},
		})
	})
}

func TestShell_Run_CleanExit(t *testing.T) {
	s := New(zaptest.NewLogger(t))

	err := s.Run(context.Background(), shutdownWith(0))
	assert.NoError(t, err)
}

func TestShell_Run_ExitCode(t *testing.T) {
	s := New(zaptest.NewLogger(t))

	err := s.Run(context.Background(), shutdownWith(3))
	require.True(t, IsExitError(err))

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode)
}

func TestShell_Run_StartFailure(t *testing.T) {
	s := New(zaptest.NewLogger(t))

	err := s.Run(context.Background(), fx.Invoke(func() error {
		return errors.New("boom")
	}))

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.ExitCode)
}

func TestShell_Run_SuppliesContextAndLogger(t *testing.T) {
	log := zaptest.NewLogger(t)
	s := New(log, fx.Supply("shared"))

	var got string
	err := s.Run(context.Background(),
		fx.Invoke(func(ctx context.Context, value string) {
			assert.NotNil(t, ctx)
			got = value
		}),
		shutdownWith(0),
	)
	require.NoError(t, err)
	assert.Equal(t, "shared", got)
}

func TestIsExitError(t *testing.T) {
	assert.False(t, IsExitError(nil))
	assert.False(t, IsExitError(errors.New("other")))
	assert.True(t, IsExitError(NewExitError(2)))
	assert.Equal(t, "shell exited with 2", NewExitError(2).Error())
}

package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Version(t *testing.T) {
	rootApp.Version = "test"

	assert.Equal(t, 0, run(context.Background(), []string{appName, "--version"}))
}

func TestRun_UnknownConfigFile(t *testing.T) {
	code := run(context.Background(), []string{appName, "--config", "/nonexistent/esplog.json", "serve"})
	assert.Equal(t, 1, code)
}

func TestRun_LambdaInvalidProxySource(t *testing.T) {
	code := run(context.Background(), []string{appName, "lambda", "--lambda-proxy-source", "SQS"})
	assert.Equal(t, 1, code)
}

func TestIsAWSLambda(t *testing.T) {
	t.Setenv("AWS_LAMBDA_RUNTIME_API", "")
	assert.False(t, isAWSLambda())

	t.Setenv("AWS_LAMBDA_RUNTIME_API", "127.0.0.1:9001")
	assert.True(t, isAWSLambda())
}

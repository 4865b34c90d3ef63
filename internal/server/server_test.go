package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestServer(t *testing.T, config HttpConfig) *HttpServer {
	catchAll := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		io.WriteString(w, "catch-all "+r.URL.Path)
	})

	health := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "healthy")
	})

	return NewHttpServer(HttpServerParams{
		Context: context.Background(),
		Config:  config,
		Handlers: []*HttpHandler{
			AsHttpHandler("/", catchAll).Handler,
			AsHttpHandler("GET /health", health).Handler,
		},
		Logger: zaptest.NewLogger(t),
	})
}

func TestHttpConfig_Address(t *testing.T) {
	assert.Equal(t, "0.0.0.0:8000", HttpConfig{Host: "0.0.0.0", Port: 8000}.Address())
	assert.Equal(t, "[::1]:9000", HttpConfig{Host: "::1", Port: 9000}.Address())
}

func TestHttpServer_Routing(t *testing.T) {
	s := newTestServer(t, HttpConfig{Host: "127.0.0.1", Port: 0})

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{http.MethodGet, "/health", http.StatusOK, "healthy"},
		{http.MethodPost, "/health", http.StatusTeapot, "catch-all /health"},
		{http.MethodPost, "/api/ping", http.StatusTeapot, "catch-all /api/ping"},
		{http.MethodGet, "/anything", http.StatusTeapot, "catch-all /anything"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			s.server.Handler.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestHttpServer_ServeAndShutdown(t *testing.T) {
	s := newTestServer(t, HttpConfig{Host: "127.0.0.1", Port: 0, H2c: true})

	listener, err := s.Listen(context.Background())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- s.Serve(listener)
	}()

	res, err := http.Post("http://"+listener.Addr().String()+"/api/ping", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()

	assert.Equal(t, http.StatusTeapot, res.StatusCode)
	assert.Equal(t, "catch-all /api/ping", string(body))

	require.NoError(t, s.Shutdown(context.Background()))
	assert.NoError(t, <-done)
}

package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func namedHandler(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, name+" "+r.URL.RequestURI())
	})
}

func TestRouter_ExactTargets(t *testing.T) {
	router := NewMux([]*HttpHandler{
		AsHttpHandler("/", namedHandler("fallback")).Handler,
		AsHttpHandler("GET /health", namedHandler("health")).Handler,
		AsHttpHandler("/any", namedHandler("any")).Handler,
	})

	tests := []struct {
		method string
		target string
		want   string
	}{
		{http.MethodGet, "/health", "health /health"},
		{http.MethodPost, "/health", "fallback /health"},
		{http.MethodGet, "/health?verbose=1", "fallback /health?verbose=1"},
		{http.MethodGet, "//health", "fallback //health"},
		{http.MethodPut, "/any", "any /any"},
		{http.MethodPost, "/api//ping", "fallback /api//ping"},
		{http.MethodPost, "/api/../api/ping", "fallback /api/../api/ping"},
		{http.MethodPost, "/api/%70ing", "fallback /api/%70ing"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestRouter_NoFallback(t *testing.T) {
	router := NewMux([]*HttpHandler{
		AsHttpHandler("GET /health", namedHandler("health")).Handler,
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/other", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

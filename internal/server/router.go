package server

import (
	"net/http"
	"strings"
)

// fallbackPattern receives every request no other handler matches.
const fallbackPattern = "/"

type routeKey struct {
	method string
	target string
}

// Router dispatches on the exact request target. Unlike http.ServeMux
// it never cleans or redirects paths, so device requests reach the
// fallback handler unchanged.
type Router struct {
	routes   map[routeKey]http.Handler
	fallback http.Handler
}

// NewMux creates a Router from handlers. Patterns are "[METHOD ]/path";
// a pattern without method matches any method.
func NewMux(handlers []*HttpHandler) *Router {
	r := &Router{
		routes:   make(map[routeKey]http.Handler, len(handlers)),
		fallback: http.NotFoundHandler(),
	}

	for _, handler := range handlers {
		key := parsePattern(handler.Pattern)
		if key.method == "" && key.target == fallbackPattern {
			r.fallback = handler.Handler
			continue
		}

		r.routes[key] = handler.Handler
	}

	return r
}

func parsePattern(pattern string) routeKey {
	method, target, ok := strings.Cut(strings.TrimSpace(pattern), " ")
	if !ok {
		return routeKey{target: method}
	}

	return routeKey{method: method, target: strings.TrimSpace(target)}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	target := req.URL.RequestURI()

	if handler, ok := r.routes[routeKey{method: req.Method, target: target}]; ok {
		handler.ServeHTTP(w, req)
		return
	}

	if handler, ok := r.routes[routeKey{target: target}]; ok {
		handler.ServeHTTP(w, req)
		return
	}

	r.fallback.ServeHTTP(w, req)
}

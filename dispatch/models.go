package dispatch

import (
	"context"
	"net/http"
)

// Request is a decoded device request, independent of the transport
// it arrived on.
type Request struct {
	Path   string
	Method string
	Header http.Header
	Body   []byte
}

// Response is the encoded reply to a device request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Envelope is the JSON body shape shared by every response.
type Envelope struct {
	Response string `json:"response"`
}

// Handler resolves a device request into a response.
type Handler interface {
	Handle(ctx context.Context, request Request) Response
}

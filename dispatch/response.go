package dispatch

import (
	"encoding/json"
	"net/http"
)

// NewResponse creates a response carrying message in the envelope.
func NewResponse(status int, message string) Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	body, err := json.Marshal(Envelope{Response: message})
	if err != nil {
		return Response{StatusCode: http.StatusInternalServerError, Header: header}
	}

	return Response{
		StatusCode: status,
		Header:     header,
		Body:       body,
	}
}

// NewErrorResponse creates the envelope response for err.
func NewErrorResponse(err error) Response {
	return NewResponse(lookupError(err))
}

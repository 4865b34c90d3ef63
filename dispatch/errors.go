package dispatch

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidJSON      = errors.New("invalid json")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrPayloadTooLarge  = errors.New("payload too large")
)

type wellKnownError struct {
	status  int
	message string
}

var wellKnownErrors = map[error]wellKnownError{
	ErrInvalidJSON:      {http.StatusBadRequest, "Invalid JSON"},
	ErrMethodNotAllowed: {http.StatusMethodNotAllowed, "Method not allowed"},
	ErrPayloadTooLarge:  {http.StatusRequestEntityTooLarge, "Payload too large"},
}

// lookupError returns the status code and envelope message for err.
func lookupError(err error) (int, string) {
	if known, ok := wellKnownErrors[err]; ok {
		return known.status, known.message
	}

	for target, known := range wellKnownErrors {
		if errors.Is(err, target) {
			return known.status, known.message
		}
	}

	return http.StatusInternalServerError, "Internal error"
}

package dispatch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Payload is the JSON-decoded request body. No schema is enforced on
// it, fields are read through Get or GetOr.
type Payload map[string]any

// Get returns the value stored under key and whether it was present.
func (p Payload) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}

	v, ok := p[key]
	return v, ok
}

// GetOr returns the value stored under key, or def if the key is
// missing.
func (p Payload) GetOr(key string, def any) any {
	if v, ok := p.Get(key); ok {
		return v
	}

	return def
}

// decodePayload parses a request body. An empty body yields an empty
// payload. Valid JSON that is not an object carries no fields and also
// yields an empty payload.
func decodePayload(body []byte) (Payload, error) {
	if len(body) == 0 {
		return Payload{}, nil
	}

	if !utf8.Valid(body) {
		return nil, fmt.Errorf("%w: body is not valid utf-8", ErrInvalidJSON)
	}

	// numbers stay json.Number, so large integers are logged exactly
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after value", ErrInvalidJSON)
	}

	obj, ok := data.(map[string]any)
	if !ok {
		return Payload{}, nil
	}

	return Payload(obj), nil
}

// Package schema holds the JSON schemas describing what the firmware
// is expected to send on each device route.
package schema

import (
	_ "embed"
	"errors"

	"github.com/xeipuuv/gojsonschema"
)

var ErrSchemaNotFound = errors.New("schema not found")

type Schema struct {
	schemas map[string]*gojsonschema.Schema
}

//go:embed temperature.json
var temperature []byte

//go:embed error.json
var deviceError []byte

// New compiles the embedded schemas, keyed by route path.
func New() (*Schema, error) {
	sources := map[string][]byte{
		"/api/temperature": temperature,
		"/api/error":       deviceError,
	}

	schemas := make(map[string]*gojsonschema.Schema, len(sources))
	for path, source := range sources {
		compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(source))
		if err != nil {
			return nil, err
		}

		schemas[path] = compiled
	}

	return &Schema{schemas: schemas}, nil
}

func (s *Schema) Get(path string) (*gojsonschema.Schema, error) {
	schema, ok := s.schemas[path]
	if !ok {
		return nil, ErrSchemaNotFound
	}

	return schema, nil
}

// Validate checks data against the schema registered for path.
// ErrSchemaNotFound is returned for paths without a schema.
func (s *Schema) Validate(path string, data map[string]any) (*gojsonschema.Result, error) {
	schema, err := s.Get(path)
	if err != nil {
		return nil, err
	}

	return schema.Validate(gojsonschema.NewGoLoader(data))
}

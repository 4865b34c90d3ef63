package dispatch

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/esplog/esplog/dispatch/schema"
)

// DispatcherParams defines the dependencies for the dispatcher.
type DispatcherParams struct {
	fx.In

	Config Config

	Routes Routes

	Log *zap.Logger
}

// Dispatcher decodes device requests and routes them by exact path.
// It keeps no state between requests.
type Dispatcher struct {
	routes Routes

	schema *schema.Schema

	log *zap.Logger
}

var _ Handler = (*Dispatcher)(nil)

// NewDispatcher creates a new dispatcher.
func NewDispatcher(params DispatcherParams) (Handler, error) {
	var payloadSchema *schema.Schema
	if params.Config.SchemaCheck {
		s, err := schema.New()
		if err != nil {
			return nil, err
		}
		payloadSchema = s
	}

	return &Dispatcher{
		routes: params.Routes,
		schema: payloadSchema,
		log:    params.Log.Named("dispatch"),
	}, nil
}

// Handle resolves a device request into a response. Every outcome,
// including failures, is reported through the response envelope.
func (d *Dispatcher) Handle(ctx context.Context, req Request) Response {
	log := d.log.With(
		zap.String("path", req.Path),
		zap.String("method", req.Method),
	)

	res := d.dispatch(ctx, log, req)

	requestsTotal.WithLabelValues(d.routeLabel(req.Path), strconv.Itoa(res.StatusCode)).Inc()
	payloadBytes.Observe(float64(len(req.Body)))

	return res
}

func (d *Dispatcher) dispatch(ctx context.Context, log *zap.Logger, req Request) Response {
	if req.Method != http.MethodPost {
		log.Debug("invalid method")
		res := NewErrorResponse(ErrMethodNotAllowed)
		res.Header.Set("Allow", http.MethodPost)
		return res
	}

	log.Info("raw body", zap.String("body", string(req.Body)))

	payload, err := decodePayload(req.Body)
	if err != nil {
		log.Info("failed to decode payload", zap.Error(err))
		return NewErrorResponse(err)
	}

	route, ok := d.routes[req.Path]
	if !ok {
		log.Debug("unknown endpoint")
		route = unknownEndpoint
	} else {
		d.checkSchema(log, req.Path, payload)
	}

	return NewResponse(route(ctx, log, payload))
}

// checkSchema logs payloads that do not match the schema expected for
// path. The outcome never changes the response.
func (d *Dispatcher) checkSchema(log *zap.Logger, path string, payload Payload) {
	if d.schema == nil {
		return
	}

	res, err := d.schema.Validate(path, payload)
	if errors.Is(err, schema.ErrSchemaNotFound) {
		return
	}
	if err != nil {
		log.Debug("schema check failed", zap.Error(err))
		return
	}

	if res.Valid() {
		return
	}

	problems := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		problems = append(problems, e.String())
	}

	log.Warn("payload does not match schema", zap.Strings("problems", problems))
}

func (d *Dispatcher) routeLabel(path string) string {
	if _, ok := d.routes[path]; ok {
		return path
	}

	return unknownRoute
}

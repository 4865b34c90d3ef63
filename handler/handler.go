package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/esplog/esplog/dispatch"
	"github.com/esplog/esplog/internal/server"
)

const requestIDHeader = "X-Request-Id"

type DeviceHandlerParams struct {
	fx.In

	Handler dispatch.Handler
	Config  server.HttpConfig `optional:"true"`
	Log     *zap.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		handler:      params.Handler,
		maxBodyBytes: params.Config.MaxBodyBytes,
		log:          params.Log,
	}
}

// DeviceHandler adapts net/http requests to the dispatcher.
type DeviceHandler struct {
	handler      dispatch.Handler
	maxBodyBytes int64
	log          *zap.Logger
}

func (h *DeviceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	log := h.log.With(
		zap.String("request_id", requestID),
		zap.String("remote_addr", r.RemoteAddr),
	)

	w.Header().Set(requestIDHeader, requestID)

	// Read exactly Content-Length bytes, requests without one carry
	// no body
	var data []byte
	if r.ContentLength > 0 {
		body := io.Reader(r.Body)
		if h.maxBodyBytes > 0 {
			body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
		}

		var err error
		data, err = io.ReadAll(body)
		if err != nil {
			log.Debug("failed to read body", zap.Error(err))
			writeResponse(log, w, dispatch.NewErrorResponse(readError(err)))
			return
		}
	}

	request := dispatch.Request{
		Path:   r.URL.RequestURI(),
		Method: strings.ToUpper(r.Method),
		Header: r.Header,
		Body:   data,
	}

	// Handle the request
	response := h.handler.Handle(r.Context(), request)

	writeResponse(log, w, response)
}

func readError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return dispatch.ErrPayloadTooLarge
	}

	return dispatch.ErrInvalidJSON
}

func writeResponse(log *zap.Logger, w http.ResponseWriter, response dispatch.Response) {
	// Map response headers
	for k, v := range response.Header {
		for _, vv := range v {
			w.Header().Add(k, vv)
		}
	}

	// Write response headers and status code
	w.WriteHeader(response.StatusCode)

	// Write response body
	if _, err := w.Write(response.Body); err != nil {
		log.Debug("failed to write response", zap.Error(err))
	}
}

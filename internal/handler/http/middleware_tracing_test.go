package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/promptkeep/promptkeep/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTracingTestHandler wires a handler whose root logger writes JSON lines
// into buf so the trace id attached to the request context can be inspected.
func newTracingTestHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func TestWithTracing_GeneratesTraceID(t *testing.T) {
	buf := &bytes.Buffer{}
	h := newTracingTestHandler(buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("handled")
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/folders", nil)
	rr := httptest.NewRecorder()
	h.withTracing(next).ServeHTTP(rr, req)

	responseTraceID := rr.Header().Get(traceHeader)
	require.NotEmpty(t, responseTraceID)
	assert.Contains(t, buf.String(), `"trace_id":"`+responseTraceID+`"`)
}

func TestWithTracing_EchoesClientTraceID(t *testing.T) {
	buf := &bytes.Buffer{}
	h := newTracingTestHandler(buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("handled")
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/folders", nil)
	req.Header.Set(traceHeader, "client-supplied-id")
	rr := httptest.NewRecorder()
	h.withTracing(next).ServeHTTP(rr, req)

	assert.Equal(t, "client-supplied-id", rr.Header().Get(traceHeader))
	assert.Contains(t, buf.String(), `"trace_id":"client-supplied-id"`)
}

func TestWithTracing_UniquePerRequest(t *testing.T) {
	h := newTracingTestHandler(&bytes.Buffer{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	middleware := h.withTracing(next)

	seen := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/prompts", nil))

		id := rr.Header().Get(traceHeader)
		require.NotEmpty(t, id)
		seen[id] = struct{}{}
	}

	assert.Len(t, seen, 5)
}

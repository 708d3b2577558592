package http

import (
	"net/http"
	"time"

	"github.com/promptkeep/promptkeep/internal/logger"
)

// withAccessLog emits one log line per request after the handler chain has
// finished, using the trace-aware logger installed by withTracing.
func (h *Handler) withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		method, path := r.Method, r.RequestURI

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("method", method).
			Str("path", path).
			Int("status", lw.status).
			Int("bytes", lw.size).
			Dur("elapsed", time.Since(start)).
			Msg("request served")
	})
}

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/poem-catalog/internal/logger"
)

// withLogging emits one access-log entry per request with the method, URI,
// status, duration, and response size, using the trace-scoped logger that
// withTraceID put on the context.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/toolbox-vault/internal/logger"
)

// withLogging writes one access log entry per request. Request bodies are
// never logged: they carry secrets.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.statusCode()).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}

package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"videostore-admin/internal/logger"
)

// RequestID tags every request with a correlation id, honoring one the
// shell already supplied.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// Logging records each request with its duration.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", w.Header().Get("X-Request-ID"),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

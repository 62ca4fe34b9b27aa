package middleware

import (
	"net/http"
	"time"

	"pet-care-booking/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Logging deja una línea por request. Va después de RequestID para heredar el request_id.
func Logging(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"remote_addr": r.RemoteAddr,
			}

			l := logger.FromContext(r.Context(), log)
			if status >= http.StatusInternalServerError {
				l.Warn("request", fields)
				return
			}
			l.Info("request", fields)
		})
	}
}

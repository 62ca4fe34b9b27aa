package middleware

import (
	"net/http"
	"runtime/debug"

	"pet-care-booking/internal/platform/logger"
)

// Recover convierte un panic en 500 y lo loguea con el stack.
// Reemplaza a chi/middleware.Recoverer para que el log salga por nuestro logger.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.FromContext(r.Context(), log).Error("panic recovered", map[string]any{
					"panic":  rec,
					"path":   r.URL.Path,
					"method": r.Method,
					"stack":  string(debug.Stack()),
				})

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"internal error"}` + "\n"))
			}()

			next.ServeHTTP(w, r)
		})
	}
}

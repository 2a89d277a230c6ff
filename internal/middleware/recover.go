package middleware

import (
	"net/http"
	"runtime/debug"

	"petstore-server/internal/platform/logger"
)

// Recover convierte un panic del handler en un 500, logueando el stack con
// el request id para poder correlacionar. Un pet almacenado sin id, por
// ejemplo, hace panicar al sort de Find y termina acá.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered", map[string]any{
						"panic":      rec,
						"stack":      string(debug.Stack()),
						"request_id": GetRequestID(r.Context()),
					})
					http.Error(w, "internal error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

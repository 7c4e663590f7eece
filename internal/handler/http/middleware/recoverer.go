package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hrms-suite/hrms-backend-go/internal/handler/http/response"
)

// Recoverer turns a panic into the JSON 500 envelope.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			slog.Error("panic recovered",
				"panic", rec,
				"request_id", chiMiddleware.GetReqID(r.Context()),
				"stack", string(debug.Stack()),
			)
			response.InternalServerError(w, "An unexpected error occurred")
		}()

		next.ServeHTTP(w, r)
	})
}

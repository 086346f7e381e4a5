package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/warnaku/warnaku/internal/api/response"
)

// Recovery returns middleware that recovers from panics and returns a 500
// error. In development mode the body carries the recovered value; otherwise
// the detail stays in the log and the body is generic.
func Recovery(development bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					slog.Error("panic recovered", "error", err, "requestId", GetRequestID(r.Context()))
					msg := "Something went wrong!"
					if development {
						msg = fmt.Sprintf("%v", err)
					}
					response.Error(w, http.StatusInternalServerError, msg)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

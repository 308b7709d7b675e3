package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"
)

var ErrRequestTimeout = errors.New("request timeout exceeded")

// Middleware ограничивает время обработки запроса. timeout <= 0 - без ограничения.
// Причина отмены доступна через context.Cause.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeoutCause(r.Context(), timeout, ErrRequestTimeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

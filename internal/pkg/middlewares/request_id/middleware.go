package request_id

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	Header    = "X-Request-ID"
	maxLength = 128
)

type ctxKey struct{}

// Middleware пробрасывает входящий X-Request-ID или выдает новый UUID.
// Идентификатор кладется в контекст и возвращается в заголовке ответа.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(Header)
			if id == "" || len(id) > maxLength {
				id = uuid.NewString()
			}

			w.Header().Set(Header, id)
			next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
		})
	}
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

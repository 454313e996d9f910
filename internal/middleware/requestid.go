package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ridKey struct{}

const ridHeader = "X-Request-ID"

// RequestID tags every request with an id and echoes it back in the
// response, reusing the caller's id when the header is already set so log
// lines can be correlated across services.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := r.Header.Get(ridHeader)
			if rid == "" {
				rid = uuid.NewString()
			}
			w.Header().Set(ridHeader, rid)
			ctx := context.WithValue(r.Context(), ridKey{}, rid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID returns the id stored by RequestID, or "" outside the chain.
func GetRequestID(r *http.Request) string {
	rid, _ := r.Context().Value(ridKey{}).(string)
	return rid
}

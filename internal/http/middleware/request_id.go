package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

const headerRequestID = "X-Request-Id"

// RequestID makes sure every request carries X-Request-Id: an incoming value
// is kept, otherwise a random 32-char hex id is generated. The id is set on
// the response, on the request header (read by errors.WriteError) and in ctx.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if id == "" {
				id = genID()
				r.Header.Set(headerRequestID, id)
			}
			w.Header().Set(headerRequestID, id)

			ctx := context.WithValue(r.Context(), ctxRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDFrom returns the id stored by RequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxRequestID).(string)
	return id
}

func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

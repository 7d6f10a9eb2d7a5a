package httpapi

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gamecart/internal/logging"
)

type requestIDKey struct{}

// withRequestID assigns every request a uuid, echoes it in the X-Request-Id
// header, and makes it available to handler loggers via the context.
func (s *HTTPServer) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// requestLogger returns the server logger annotated with the request id.
func (s *HTTPServer) requestLogger(r *http.Request) logging.Logger {
	return s.logger.With("request_id", requestIDFrom(r.Context()))
}

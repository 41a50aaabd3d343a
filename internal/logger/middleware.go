package logger

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestIDFrom returns the request id stored in the context, if any.
func RequestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestLogger is HTTP middleware that assigns a request id and logs the
// request/response pair around the handler.
func RequestLogger(log *Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := GenerateRequestID()
			r = r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID))

			log.Debug("request_started", requestID, fmt.Sprintf("%s %s", r.Method, r.URL.Path))

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			log.Debug("request_completed", requestID,
				fmt.Sprintf("%s %s - %d (%dms)", r.Method, r.URL.Path, rw.statusCode, time.Since(start).Milliseconds()))
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

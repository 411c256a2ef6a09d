package middleware

import (
	"net/http"
	"time"

	"github.com/mcm-ryan/GroceryPriceFinder/internal/infrastructure/logging"
)

// responseWriter wraps http.ResponseWriter to capture the status code and
// bytes written.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.statusCode == 0 {
		rw.statusCode = http.StatusOK
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// RequestTracing assigns every request a generated request ID, stores it in
// the request context for downstream structured logs, and logs request
// start and completion.
func RequestTracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := logging.GenerateRequestID()

		startTime := time.Now()
		ctx := logging.WithRequestID(r.Context(), requestID)
		ctx = logging.WithStartTime(ctx, startTime)

		// Echo the request ID so clients can correlate logs.
		w.Header().Set("X-Request-ID", requestID)

		wrapped := &responseWriter{ResponseWriter: w}

		method := r.Method
		path := r.URL.Path
		userAgent := r.Header.Get("User-Agent")
		remoteIP := getRemoteIP(r)

		logging.Info(ctx, "HTTP request started", logging.Fields{
			logging.FieldMethod:    method,
			logging.FieldPath:      path,
			logging.FieldUserAgent: userAgent,
			logging.FieldRemoteIP:  remoteIP,
			"content_length":       r.ContentLength,
		})

		next.ServeHTTP(wrapped, r.WithContext(ctx))

		duration := time.Since(startTime)
		logging.HTTPRequest(ctx, method, path, wrapped.statusCode, logging.Fields{
			logging.FieldUserAgent: userAgent,
			logging.FieldRemoteIP:  remoteIP,
			"response_size":        wrapped.written,
			"response_time_ms":     float64(duration.Nanoseconds()) / 1e6,
		})
	})
}

// getRemoteIP extracts the real client IP, honoring proxy headers.
func getRemoteIP(r *http.Request) string {
	if xForwardedFor := r.Header.Get("X-Forwarded-For"); xForwardedFor != "" {
		return xForwardedFor
	}
	if xRealIP := r.Header.Get("X-Real-IP"); xRealIP != "" {
		return xRealIP
	}
	return r.RemoteAddr
}

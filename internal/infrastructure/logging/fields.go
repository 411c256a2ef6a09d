package logging

import (
	"context"
	"time"
)

// Fields carries structured key-value data attached to a log entry.
type Fields map[string]interface{}

// LogLevel identifies the severity of a log entry.
type LogLevel string

const (
	LevelDebug LogLevel = "DEBUG"
	LevelInfo  LogLevel = "INFO"
	LevelWarn  LogLevel = "WARN"
	LevelError LogLevel = "ERROR"
)

// Standard field names used across the service.
const (
	FieldRequestID  = "request_id"
	FieldError      = "error"
	FieldErrorType  = "error_type"
	FieldDuration   = "duration_ms"
	FieldStatusCode = "status_code"
	FieldMethod     = "http_method"
	FieldPath       = "http_path"
	FieldRemoteIP   = "http_remote_ip"
	FieldUserAgent  = "http_user_agent"

	FieldStore    = "store"
	FieldProvider = "provider"
	FieldCacheKey = "cache_key"
	FieldItems    = "items_count"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	startTimeKey contextKey = "start_time"
)

// WithRequestID attaches a request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithStartTime attaches a request start time to the context so entries can
// report elapsed duration.
func WithStartTime(ctx context.Context, startTime time.Time) context.Context {
	return context.WithValue(ctx, startTimeKey, startTime)
}

// GetRequestID returns the request ID from the context, or "" if absent.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// GetStartTime returns the request start time from the context, or the zero
// time if absent.
func GetStartTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(startTimeKey).(time.Time); ok {
		return t
	}
	return time.Time{}
}

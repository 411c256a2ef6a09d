package logging

import (
	"context"
	"sync"
)

var (
	globalLogger *StructuredLogger
	globalMu     sync.RWMutex
)

// GetGlobalLogger returns the process-wide logger, creating a default one
// on first use.
func GetGlobalLogger() *StructuredLogger {
	globalMu.RLock()
	if globalLogger != nil {
		defer globalMu.RUnlock()
		return globalLogger
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		logger, err := NewStructuredLogger(DefaultConfig())
		if err != nil {
			panic("failed to create default logger: " + err.Error())
		}
		globalLogger = logger
	}
	return globalLogger
}

// SetGlobalLogger replaces the process-wide logger.
func SetGlobalLogger(logger *StructuredLogger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// SetGlobalLogLevel changes the global logger's minimum level.
func SetGlobalLogLevel(level LogLevel) {
	GetGlobalLogger().SetLevel(level)
}

// Debug logs a debug message using the global logger.
func Debug(ctx context.Context, message string, fields Fields) {
	GetGlobalLogger().Debug(ctx, message, fields)
}

// Info logs an info message using the global logger.
func Info(ctx context.Context, message string, fields Fields) {
	GetGlobalLogger().Info(ctx, message, fields)
}

// Warn logs a warning message using the global logger.
func Warn(ctx context.Context, message string, fields Fields) {
	GetGlobalLogger().Warn(ctx, message, fields)
}

// Error logs an error message using the global logger.
func Error(ctx context.Context, message string, fields Fields) {
	GetGlobalLogger().Error(ctx, message, fields)
}

// WarnWithError logs a warning with error details using the global logger.
func WarnWithError(ctx context.Context, message string, err error, fields Fields) {
	GetGlobalLogger().WarnWithError(ctx, message, err, fields)
}

// ErrorWithError logs an error message with error details using the global logger.
func ErrorWithError(ctx context.Context, message string, err error, fields Fields) {
	GetGlobalLogger().ErrorWithError(ctx, message, err, fields)
}

// HTTPRequest logs a completed HTTP request at a level derived from the
// response status code.
func HTTPRequest(ctx context.Context, method, path string, statusCode int, fields Fields) {
	merged := Fields{
		FieldMethod:     method,
		FieldPath:       path,
		FieldStatusCode: statusCode,
	}
	for k, v := range fields {
		merged[k] = v
	}

	logger := GetGlobalLogger()
	switch {
	case statusCode >= 500:
		logger.Error(ctx, "HTTP request completed", merged)
	case statusCode >= 400:
		logger.Warn(ctx, "HTTP request completed", merged)
	default:
		logger.Info(ctx, "HTTP request completed", merged)
	}
}

// CacheOperation logs a cache lookup outcome.
func CacheOperation(ctx context.Context, operation, key string, hit bool, fields Fields) {
	merged := Fields{FieldCacheKey: key, "operation": operation, "hit": hit}
	for k, v := range fields {
		merged[k] = v
	}
	GetGlobalLogger().Debug(ctx, "Cache operation", merged)
}

// ProviderFallback logs an activation of the mock-provider fallback.
func ProviderFallback(ctx context.Context, storeName, provider, reason string, err error) {
	fields := Fields{
		FieldStore:    storeName,
		FieldProvider: provider,
		"reason":      reason,
	}
	GetGlobalLogger().WarnWithError(ctx, "Falling back to mock price provider", err, fields)
}

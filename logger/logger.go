package logger

import "context"

// Logger defines the interface for structured logging with context support.
// Implementations attach the request ID carried by ctx (see WithRequestID)
// to every entry.
type Logger interface {
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Info(ctx context.Context, msg string, fields map[string]interface{})
	Warn(ctx context.Context, msg string, fields map[string]interface{})
	Error(ctx context.Context, msg string, fields map[string]interface{})

	// WithField returns a logger that adds key to all subsequent entries.
	WithField(key string, value interface{}) Logger

	// WithFields returns a logger that adds fields to all subsequent entries.
	WithFields(fields map[string]interface{}) Logger
}

type requestIDKey struct{}

// RequestIDField is the field name under which request IDs are logged.
const RequestIDField = "request_id"

// WithRequestID returns a copy of ctx carrying the given request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID extracts the request ID from ctx, if any.
func RequestID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

// mergeFields combines base fields, call fields and the context request ID.
// Call fields win over base fields.
func mergeFields(ctx context.Context, base, fields map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(base)+len(fields)+1)
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	if id, ok := RequestID(ctx); ok {
		merged[RequestIDField] = id
	}
	return merged
}

package context

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey represents a key for context values
type ContextKey string

const (
	// RequestIDKey carries the id sent as X-Request-ID on every API call made
	// for one user action
	RequestIDKey ContextKey = "request_id"
	// OperationKey carries the name of the user action being served
	OperationKey ContextKey = "operation"
)

// WithRequestID adds a request ID to the context, generating one when empty
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithOperation records the user action the context belongs to
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, OperationKey, op)
}

// GetOperation retrieves the operation name from context
func GetOperation(ctx context.Context) string {
	if op, ok := ctx.Value(OperationKey).(string); ok {
		return op
	}
	return ""
}

// NewActionContext starts the context for one user action: a fresh request ID
// and the action's name
func NewActionContext(ctx context.Context, op string) context.Context {
	return WithOperation(WithRequestID(ctx, ""), op)
}

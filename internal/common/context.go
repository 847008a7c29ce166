package common

import "context"

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID  contextKey = "request_id"
	ContextKeyDocumentID contextKey = "document_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithDocumentID tags the context with the document a run is working on
func WithDocumentID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, ContextKeyDocumentID, id)
}

// DocumentIDFromContext extracts the document ID from context (0 if unset)
func DocumentIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(ContextKeyDocumentID).(int); ok {
		return id
	}
	return 0
}

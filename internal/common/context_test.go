package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextTagging(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithDocumentID(ctx, 42)

	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Equal(t, 42, DocumentIDFromContext(ctx))

	assert.Empty(t, RequestIDFromContext(context.Background()))
	assert.Zero(t, DocumentIDFromContext(context.Background()))
}

package lease

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLockerExclusive(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	token, ok, err := l.Acquire(ctx, 42)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEmpty(t, token)

	_, ok, err = l.Acquire(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok, "second acquire on held lease must fail")

	other, ok, err := l.Acquire(ctx, 43)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, token, other)
}

func TestLocalLockerReleaseRequiresToken(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	token, ok, err := l.Acquire(ctx, 7)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, l.Release(ctx, 7, "stale-token"))
	_, ok, err = l.Acquire(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok, "wrong token must not free the lease")

	require.NoError(t, l.Release(ctx, 7, token))
	_, ok, err = l.Acquire(ctx, 7)
	require.NoError(t, err)
	assert.True(t, ok, "correct token frees the lease")
}

func TestLeaseKey(t *testing.T) {
	assert.Equal(t, "scanvault:lease:42", leaseKey(42))
}

// Package lease grants short-lived exclusive processing rights per document.
// Queue redeliveries and concurrent workers race for the same document; the
// loser skips instead of double-processing.
package lease

import (
	"context"
	"fmt"
)

// Locker hands out per-document leases. Acquire returns ok=false when another
// holder owns the lease; Release is a no-op unless the token matches.
type Locker interface {
	Acquire(ctx context.Context, documentID int) (token string, ok bool, err error)
	Release(ctx context.Context, documentID int, token string) error
}

func leaseKey(documentID int) string {
	return fmt.Sprintf("scanvault:lease:%d", documentID)
}

package lease

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// LocalLocker implements Locker inside a single process. Batch runs process
// documents inline and need no Redis; mutual exclusion within the process is
// enough there.
type LocalLocker struct {
	mu   sync.Mutex
	held map[int]string
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{held: make(map[int]string)}
}

var _ Locker = (*LocalLocker)(nil)

func (l *LocalLocker) Acquire(_ context.Context, documentID int) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, taken := l.held[documentID]; taken {
		return "", false, nil
	}
	token := uuid.NewString()
	l.held[documentID] = token
	return token, true, nil
}

func (l *LocalLocker) Release(_ context.Context, documentID int, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[documentID] == token {
		delete(l.held, documentID)
	}
	return nil
}

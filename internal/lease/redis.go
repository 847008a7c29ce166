package lease

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lease only when the caller still owns it, so a
// slow worker cannot free a lease that already expired and moved on.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLocker implements Locker on a single Redis instance.
type RedisLocker struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisLocker(addr string, ttl time.Duration, logger *slog.Logger) (*RedisLocker, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &RedisLocker{rdb: rdb, ttl: ttl, logger: logger}, nil
}

var _ Locker = (*RedisLocker)(nil)

func (l *RedisLocker) Acquire(ctx context.Context, documentID int) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, leaseKey(documentID), token, l.ttl).Result()
	if err != nil {
		l.logger.Error("failed to acquire lease", "document_id", documentID, "error", err)
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (l *RedisLocker) Release(ctx context.Context, documentID int, token string) error {
	n, err := releaseScript.Run(ctx, l.rdb, []string{leaseKey(documentID)}, token).Int()
	if err != nil {
		l.logger.Error("failed to release lease", "document_id", documentID, "error", err)
		return err
	}
	if n == 0 {
		// Expired or taken over; the TTL already did the release for us.
		l.logger.Warn("lease was not held at release", "document_id", documentID)
	}
	return nil
}

func (l *RedisLocker) Close() error {
	return l.rdb.Close()
}

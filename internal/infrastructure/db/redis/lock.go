package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	lockTTL       = 10 * time.Second
	lockRetry     = 50 * time.Millisecond
	lockKeyPrefix = "lock:account:"
)

// releaseScript deletes the lock key only when it still holds our token, so
// a lock that expired and was re-acquired by another request is never
// released by the first holder.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// AccountLock serialises read-modify-write sequences per account identity
// using a Redis SETNX lease. It backs the profile photo replacement, whose
// read-old/delete-old/write-new steps must not interleave across requests.
type AccountLock struct {
	client *redis.Client
}

// NewAccountLock creates an AccountLock wrapping the given Redis client.
func NewAccountLock(client *redis.Client) *AccountLock {
	return &AccountLock{client: client}
}

// Lock acquires the per-account lock, polling until it succeeds or ctx is
// done. The returned func releases the lock; the TTL bounds how long a
// crashed holder can block others.
func (l *AccountLock) Lock(ctx context.Context, accountID string) (func(), error) {
	key := lockKeyPrefix + accountID
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("account lock: %w", err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetry):
		}
	}

	release := func() {
		ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()
		_ = releaseScript.Run(ctx, l.client, []string{key}, token).Err()
	}
	return release, nil
}

package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Lockout counts failed logins per username. A username is locked once it
// reaches the attempt limit inside the window.
type Lockout interface {
	Locked(ctx context.Context, username string) (bool, error)
	Fail(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

const lockoutKeyPrefix = "backoffice:login:fail:"

func lockoutKey(username string) string {
	return lockoutKeyPrefix + strings.ToLower(username)
}

type RedisLockout struct {
	rdb         *redis.Client
	maxAttempts int
	window      time.Duration
}

func NewRedisLockout(rdb *redis.Client, maxAttempts int, window time.Duration) *RedisLockout {
	return &RedisLockout{rdb: rdb, maxAttempts: maxAttempts, window: window}
}

func (l *RedisLockout) Locked(ctx context.Context, username string) (bool, error) {
	n, err := l.rdb.Get(ctx, lockoutKey(username)).Int()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return n >= l.maxAttempts, nil
}

func (l *RedisLockout) Fail(ctx context.Context, username string) error {
	key := lockoutKey(username)
	n, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if n == 1 {
		return l.rdb.Expire(ctx, key, l.window).Err()
	}
	return nil
}

func (l *RedisLockout) Reset(ctx context.Context, username string) error {
	return l.rdb.Del(ctx, lockoutKey(username)).Err()
}

type attempts struct {
	count   int
	expires time.Time
}

type MemoryLockout struct {
	mu          sync.Mutex
	failures    map[string]attempts
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

func NewMemoryLockout(maxAttempts int, window time.Duration) *MemoryLockout {
	return &MemoryLockout{
		failures:    map[string]attempts{},
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

func (l *MemoryLockout) current(key string) attempts {
	a, ok := l.failures[key]
	if ok && !l.now().Before(a.expires) {
		delete(l.failures, key)
		return attempts{}
	}
	return a
}

func (l *MemoryLockout) Locked(_ context.Context, username string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current(lockoutKey(username)).count >= l.maxAttempts, nil
}

func (l *MemoryLockout) Fail(_ context.Context, username string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := lockoutKey(username)
	a := l.current(key)
	if a.count == 0 {
		a.expires = l.now().Add(l.window)
	}
	a.count++
	l.failures[key] = a
	return nil
}

func (l *MemoryLockout) Reset(_ context.Context, username string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.failures, lockoutKey(username))
	return nil
}

package persistence

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TicketLocker serializes ticket creation per (channel, user). The guard
// check and thread creation are not atomic on the platform side; holding
// this lock across both closes the window where one user's two concurrent
// selections each pass the guard.
type TicketLocker interface {
	// Acquire takes the lock. ok=false means another creation for the same
	// pair is in flight.
	Acquire(ctx context.Context, channelID, userID string) (ok bool, err error)

	// Release frees the lock. Safe to call for a lock that already expired.
	Release(ctx context.Context, channelID, userID string) error
}

func lockKey(channelID, userID string) string {
	return "ticket-lock:" + channelID + ":" + userID
}

// MemoryTicketLocker is the single-instance implementation.
type MemoryTicketLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewMemoryTicketLocker creates an in-process locker.
func NewMemoryTicketLocker() *MemoryTicketLocker {
	return &MemoryTicketLocker{held: make(map[string]struct{})}
}

func (l *MemoryTicketLocker) Acquire(_ context.Context, channelID, userID string) (bool, error) {
	key := lockKey(channelID, userID)
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, holding := l.held[key]; holding {
		return false, nil
	}
	l.held[key] = struct{}{}
	return true, nil
}

func (l *MemoryTicketLocker) Release(_ context.Context, channelID, userID string) error {
	key := lockKey(channelID, userID)
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, key)
	return nil
}

// RedisTicketLocker coordinates creation across bot instances with SET NX.
// The TTL bounds how long a crashed holder can block a user.
type RedisTicketLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTicketLocker creates a Redis-backed locker.
func NewRedisTicketLocker(client *redis.Client, ttl time.Duration) *RedisTicketLocker {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisTicketLocker{client: client, ttl: ttl}
}

func (l *RedisTicketLocker) Acquire(ctx context.Context, channelID, userID string) (bool, error) {
	return l.client.SetNX(ctx, lockKey(channelID, userID), "1", l.ttl).Result()
}

func (l *RedisTicketLocker) Release(ctx context.Context, channelID, userID string) error {
	return l.client.Del(ctx, lockKey(channelID, userID)).Err()
}

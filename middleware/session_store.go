package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// MemorySessionStore keeps sessions in process memory. Suitable for tests
// and single-instance deployments.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	now      func() time.Time
}

// NewMemorySessionStore creates an empty in-memory store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]time.Time),
		now:      time.Now,
	}
}

func (s *MemorySessionStore) Touch(_ context.Context, id string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expires, ok := s.sessions[id]
	if !ok {
		return false, nil
	}
	now := s.now()
	if !now.Before(expires) {
		delete(s.sessions, id)
		return false, nil
	}
	s.sessions[id] = now.Add(ttl)
	return true, nil
}

func (s *MemorySessionStore) Create(_ context.Context, id string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = s.now().Add(ttl)
	return nil
}

// Len returns the number of stored sessions, including expired ones not yet evicted.
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// RedisClient is the subset of the go-redis client the session store uses.
// *redis.Client, *redis.ClusterClient and redis.UniversalClient satisfy it.
type RedisClient interface {
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisSessionStore keeps sessions in Redis so they are shared across instances.
type RedisSessionStore struct {
	client RedisClient
	prefix string
}

// RedisSessionStoreOption configures a RedisSessionStore.
type RedisSessionStoreOption func(*RedisSessionStore)

// WithRedisKeyPrefix sets the key prefix for session keys (default: "keywork:session:").
func WithRedisKeyPrefix(prefix string) RedisSessionStoreOption {
	return func(s *RedisSessionStore) {
		s.prefix = prefix
	}
}

// NewRedisSessionStore creates a Redis-backed session store.
func NewRedisSessionStore(client RedisClient, opts ...RedisSessionStoreOption) *RedisSessionStore {
	s := &RedisSessionStore{client: client, prefix: "keywork:session:"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Touch refreshes the key's TTL. EXPIRE answers false for missing keys,
// which doubles as the existence check.
func (s *RedisSessionStore) Touch(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	return s.client.Expire(ctx, s.prefix+id, ttl).Result()
}

func (s *RedisSessionStore) Create(ctx context.Context, id string, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+id, time.Now().UTC().Format(time.RFC3339), ttl).Err()
}

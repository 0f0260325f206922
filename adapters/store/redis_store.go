package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Crystara-Markets/supra-multiwallet/core"
	"github.com/Crystara-Markets/supra-multiwallet/ports"
)

// RedisStore is a Redis implementation of the NonceStore interface.
// Consumed nonces are recorded with a TTL matching the nonce validity
// window, so the set never grows beyond one window's worth of logins.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed consumed-nonce store.
func NewRedisStore(client *redis.Client, ttl time.Duration) ports.NonceStore {
	return &RedisStore{
		client: client,
		prefix: "multiwallet:consumed:",
		ttl:    ttl,
	}
}

// Consume marks a nonce as used. SetNX makes the check-and-set atomic
// across instances.
func (s *RedisStore) Consume(ctx context.Context, nonce string) error {
	key := s.prefix + nonce

	set, err := s.client.SetNX(ctx, key, "1", s.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to record nonce: %w", err)
	}

	if !set {
		return core.ErrNonceConsumed
	}

	return nil
}

// Package store provides consumed-nonce stores backing the optional
// replay guard.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/Crystara-Markets/supra-multiwallet/core"
	"github.com/Crystara-Markets/supra-multiwallet/ports"
)

// MemoryStore is an in-memory implementation of the NonceStore
// interface, for single-instance deployments and tests.
type MemoryStore struct {
	consumed map[string]time.Time
	ttl      time.Duration
	mu       sync.Mutex
}

// NewMemoryStore creates an in-memory consumed-nonce store.
func NewMemoryStore(ttl time.Duration) ports.NonceStore {
	return &MemoryStore{
		consumed: make(map[string]time.Time),
		ttl:      ttl,
	}
}

// Consume marks a nonce as used. Expired records are evicted lazily on
// each call, so the map never outgrows one validity window of logins.
func (s *MemoryStore) Consume(ctx context.Context, nonce string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for n, expiry := range s.consumed {
		if now.After(expiry) {
			delete(s.consumed, n)
		}
	}

	if _, exists := s.consumed[nonce]; exists {
		return core.ErrNonceConsumed
	}

	s.consumed[nonce] = now.Add(s.ttl)
	return nil
}

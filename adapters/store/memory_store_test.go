package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Crystara-Markets/supra-multiwallet/core"
)

func TestConsumeOnce(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Consume(ctx, "nonce-a"))
	require.ErrorIs(t, s.Consume(ctx, "nonce-a"), core.ErrNonceConsumed)
	require.NoError(t, s.Consume(ctx, "nonce-b"), "other nonces are unaffected")
}

func TestConsumeAfterExpiry(t *testing.T) {
	s := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, s.Consume(ctx, "nonce-a"))

	time.Sleep(20 * time.Millisecond)

	// The record has outlived the nonce window; by then the codec
	// rejects the nonce anyway, so re-consuming is harmless.
	require.NoError(t, s.Consume(ctx, "nonce-a"))
}

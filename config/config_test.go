package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []byte("s3cret"), cfg.Secret)
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, 5*time.Minute, cfg.NonceTTL)
	require.Equal(t, time.Minute, cfg.NonceMaxSkew)
	require.False(t, cfg.Production)
	require.False(t, cfg.ReplayGuard)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("REPLAY_GUARD", "true")
	t.Setenv("NONCE_TTL", "90s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.True(t, cfg.Production)
	require.True(t, cfg.ReplayGuard)
	require.Equal(t, 90*time.Second, cfg.NonceTTL)
}

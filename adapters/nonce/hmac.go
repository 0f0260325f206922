// Package nonce implements stateless, self-authenticating challenge
// nonces. A nonce is "issuedAtMillis|randomHex|macHex": the issuance
// timestamp, at least 16 bytes of randomness, and an HMAC-SHA256 over
// the first two fields under the server secret. Validity is
// reconstructed from the nonce itself plus the clock; nothing is ever
// stored server-side.
package nonce

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Crystara-Markets/supra-multiwallet/core"
	"github.com/Crystara-Markets/supra-multiwallet/ports"
)

const (
	// DefaultTTL is how long a nonce stays valid after issuance.
	DefaultTTL = 5 * time.Minute

	// DefaultMaxSkew is how far in the future a nonce's timestamp may
	// be before it is rejected, covering clock drift between instances.
	DefaultMaxSkew = 60 * time.Second

	randomLen = 16
	delimiter = "|"
)

// Codec creates and validates HMAC-signed nonces.
type Codec struct {
	secret  []byte
	ttl     time.Duration
	maxSkew time.Duration

	now func() time.Time // overridable in tests
}

// Option configures a Codec.
type Option func(*Codec)

// WithTTL overrides the nonce validity window.
func WithTTL(ttl time.Duration) Option {
	return func(c *Codec) { c.ttl = ttl }
}

// WithMaxSkew overrides the future-timestamp allowance.
func WithMaxSkew(skew time.Duration) Option {
	return func(c *Codec) { c.maxSkew = skew }
}

// NewCodec creates a nonce codec keyed by the server secret.
func NewCodec(secret []byte, opts ...Option) ports.Noncer {
	c := &Codec{
		secret:  secret,
		ttl:     DefaultTTL,
		maxSkew: DefaultMaxSkew,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create returns a fresh nonce string.
func (c *Codec) Create() (string, error) {
	random := make([]byte, randomLen)
	if _, err := rand.Read(random); err != nil {
		return "", fmt.Errorf("failed to generate nonce randomness: %w", err)
	}

	millis := c.now().UnixMilli()
	payload := strconv.FormatInt(millis, 10) + delimiter + hex.EncodeToString(random)

	return payload + delimiter + c.sign(payload), nil
}

// Validate checks the nonce's structure, authenticity and age. Every
// failure is reported as core.ErrInvalidNonce; the wrapped detail is
// for server-side logs only and must never reach a client.
func (c *Codec) Validate(nonce string) error {
	parts := strings.Split(nonce, delimiter)
	if len(parts) != 3 {
		return fmt.Errorf("nonce has %d segments, want 3: %w", len(parts), core.ErrInvalidNonce)
	}

	payload := parts[0] + delimiter + parts[1]
	if !hmac.Equal([]byte(c.sign(payload)), []byte(parts[2])) {
		return fmt.Errorf("nonce MAC mismatch: %w", core.ErrInvalidNonce)
	}

	millis, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return fmt.Errorf("nonce timestamp not numeric: %w", core.ErrInvalidNonce)
	}

	issuedAt := time.UnixMilli(millis)
	now := c.now()

	if issuedAt.After(now.Add(c.maxSkew)) {
		return fmt.Errorf("nonce issued %s in the future: %w", issuedAt.Sub(now), core.ErrInvalidNonce)
	}

	if age := now.Sub(issuedAt); age > c.ttl {
		return fmt.Errorf("nonce is %s old, limit %s: %w", age, c.ttl, core.ErrInvalidNonce)
	}

	return nil
}

func (c *Codec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

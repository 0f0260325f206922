package nonce

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func testCodec(t *testing.T) *Codec {
	t.Helper()
	return NewCodec(testSecret).(*Codec)
}

func TestCreateValidateRoundTrip(t *testing.T) {
	c := testCodec(t)

	nonce, err := c.Create()
	require.NoError(t, err)

	require.NoError(t, c.Validate(nonce))
}

func TestCreateFormat(t *testing.T) {
	c := testCodec(t)

	nonce, err := c.Create()
	require.NoError(t, err)

	parts := strings.Split(nonce, "|")
	require.Len(t, parts, 3)
	require.Len(t, parts[1], 32, "16 random bytes as hex")
	require.Len(t, parts[2], 64, "HMAC-SHA256 as hex")
}

func TestValidateExpiry(t *testing.T) {
	c := testCodec(t)

	base := time.Now()
	c.now = func() time.Time { return base }

	nonce, err := c.Create()
	require.NoError(t, err)

	c.now = func() time.Time { return base.Add(4*time.Minute + 59*time.Second) }
	require.NoError(t, c.Validate(nonce), "nonce inside the window must validate")

	c.now = func() time.Time { return base.Add(5*time.Minute + time.Millisecond) }
	require.Error(t, c.Validate(nonce), "nonce past the window must not validate")
}

func TestValidateFutureDated(t *testing.T) {
	c := testCodec(t)

	base := time.Now()

	c.now = func() time.Time { return base.Add(30 * time.Second) }
	nonce, err := c.Create()
	require.NoError(t, err)

	c.now = func() time.Time { return base }
	require.NoError(t, c.Validate(nonce), "30s of clock skew is allowed")

	c.now = func() time.Time { return base.Add(2 * time.Minute) }
	nonce, err = c.Create()
	require.NoError(t, err)

	c.now = func() time.Time { return base }
	require.Error(t, c.Validate(nonce), "2m in the future exceeds the skew allowance")
}

func TestValidateTamper(t *testing.T) {
	c := testCodec(t)

	nonce, err := c.Create()
	require.NoError(t, err)

	parts := strings.Split(nonce, "|")

	t.Run("timestamp segment", func(t *testing.T) {
		tampered := flipChar(parts[0], 0) + "|" + parts[1] + "|" + parts[2]
		require.Error(t, c.Validate(tampered))
	})

	t.Run("random segment", func(t *testing.T) {
		tampered := parts[0] + "|" + flipChar(parts[1], 0) + "|" + parts[2]
		require.Error(t, c.Validate(tampered))
	})

	t.Run("mac segment", func(t *testing.T) {
		tampered := parts[0] + "|" + parts[1] + "|" + flipChar(parts[2], 0)
		require.Error(t, c.Validate(tampered))
	})
}

func TestValidateMalformed(t *testing.T) {
	c := testCodec(t)

	for _, nonce := range []string{
		"",
		"just-one-part",
		"two|parts",
		"one|two|three|four",
		"notanumber|deadbeef|deadbeef",
	} {
		require.Error(t, c.Validate(nonce), "nonce %q must not validate", nonce)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	c := testCodec(t)

	nonce, err := c.Create()
	require.NoError(t, err)

	other := NewCodec([]byte("other-secret"))
	require.Error(t, other.Validate(nonce))
}

func TestValidateConfiguredTTL(t *testing.T) {
	c := NewCodec(testSecret, WithTTL(time.Second)).(*Codec)

	base := time.Now()
	c.now = func() time.Time { return base }

	nonce, err := c.Create()
	require.NoError(t, err)

	c.now = func() time.Time { return base.Add(2 * time.Second) }
	require.Error(t, c.Validate(nonce))
}

// flipChar swaps one hex character for a different one.
func flipChar(s string, i int) string {
	b := []byte(s)
	if b[i] == '0' {
		b[i] = '1'
	} else {
		b[i] = '0'
	}
	return string(b)
}

// Package tokenizer mints and verifies the wallet session token, an
// HS256 JWT keyed by the server secret.
package tokenizer

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Crystara-Markets/supra-multiwallet/core"
	"github.com/Crystara-Markets/supra-multiwallet/ports"
)

// AudienceSession marks tokens minted for wallet sessions.
const AudienceSession = "wallet:session"

// DefaultSessionTTL is the absolute lifetime of a session token.
const DefaultSessionTTL = 24 * time.Hour

// JWTTokenizer implements the Tokenizer interface using HS256 JWTs.
type JWTTokenizer struct {
	secret []byte
	ttl    time.Duration

	now func() time.Time // overridable in tests
}

// NewJWTTokenizer creates a tokenizer keyed by the server secret.
func NewJWTTokenizer(secret []byte) ports.Tokenizer {
	return &JWTTokenizer{
		secret: secret,
		ttl:    DefaultSessionTTL,
		now:    time.Now,
	}
}

// Issue mints a session token binding the wallet address.
func (j *JWTTokenizer) Issue(address string) (string, error) {
	now := j.now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   address,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			Audience:  jwt.ClaimStrings{AudienceSession},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and checks a session token. Absent, malformed, badly
// signed and expired tokens all come back as core.ErrInvalidToken so
// the caller cannot leak why authentication failed.
func (j *JWTTokenizer) Verify(tokenStr string) (*core.Identity, error) {
	if tokenStr == "" {
		return nil, core.ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	}, jwt.WithAudience(AudienceSession), jwt.WithTimeFunc(j.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", core.ErrInvalidToken)
	}

	if !token.Valid {
		return nil, core.ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, core.ErrInvalidToken
	}

	return &core.Identity{
		Address:   claims.Subject,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

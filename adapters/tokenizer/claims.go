package tokenizer

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the claims carried by a wallet session token. The
// wallet address travels in the standard subject claim.
type SessionClaims struct {
	jwt.RegisteredClaims
}

package core

import "time"

// SignMessage is the fixed terms-of-service message every wallet signs to
// prove key ownership. Changing it invalidates all client integrations.
const SignMessage = "I accept the Supra Multiwallet Terms of Service and confirm that I control this wallet."

// SignatureEnvelope carries a wallet's proof of ownership as received on
// the wire. Both fields are 0x-prefixed hex strings.
type SignatureEnvelope struct {
	Signature string // 64-byte Ed25519 signature over SignMessage
	PublicKey string // 32-byte Ed25519 public key
}

// Identity is the verified claim extracted from an auth token.
type Identity struct {
	Address   string    // Wallet address of the bearer
	IssuedAt  time.Time // When the token was minted
	ExpiresAt time.Time // Absolute expiry
}

// Package verifier checks Ed25519 wallet signatures.
package verifier

import (
	"crypto/ed25519"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/Crystara-Markets/supra-multiwallet/core"
	"github.com/Crystara-Markets/supra-multiwallet/ports"
)

// Ed25519Verifier verifies signature envelopes against the Ed25519
// scheme: 32-byte public key, 64-byte signature, deterministic
// verification with no external state. It is pure and safe for
// concurrent use.
type Ed25519Verifier struct{}

// NewEd25519Verifier creates a signature verifier.
func NewEd25519Verifier() ports.SignatureVerifier {
	return &Ed25519Verifier{}
}

// Verify checks the envelope's signature over the UTF-8 bytes of
// message. Malformed hex in either envelope field is an error, as is a
// cryptographic mismatch; callers fold both into the same
// verification-failed outcome.
//
// TODO: verify that PublicKey derives to address under the chain's
// address-derivation scheme. Until then this only proves the signer
// controls some key, and the wallet-reported address is trusted.
func (v *Ed25519Verifier) Verify(message string, envelope core.SignatureEnvelope, address string) error {
	sig, err := hexutil.Decode(envelope.Signature)
	if err != nil {
		return fmt.Errorf("failed to decode signature: %w", err)
	}
	if len(sig) != ed25519.SignatureSize {
		return fmt.Errorf("signature must be %d bytes, got %d: %w", ed25519.SignatureSize, len(sig), core.ErrInvalidSignature)
	}

	pub, err := hexutil.Decode(envelope.PublicKey)
	if err != nil {
		return fmt.Errorf("failed to decode public key: %w", err)
	}
	if len(pub) != ed25519.PublicKeySize {
		return fmt.Errorf("public key must be %d bytes, got %d: %w", ed25519.PublicKeySize, len(pub), core.ErrInvalidSignature)
	}

	if !ed25519.Verify(ed25519.PublicKey(pub), []byte(message), sig) {
		return core.ErrInvalidSignature
	}

	return nil
}

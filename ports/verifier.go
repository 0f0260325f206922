package ports

import "github.com/Crystara-Markets/supra-multiwallet/core"

// SignatureVerifier proves that a message was signed by the private key
// paired with the public key in the envelope.
type SignatureVerifier interface {
	// Verify checks the envelope's signature over message. Malformed
	// envelope fields and cryptographic mismatch both yield an error;
	// callers treat every error as verification failure.
	Verify(message string, envelope core.SignatureEnvelope, address string) error
}

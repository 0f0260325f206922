package ports

import "context"

// Noncer creates and validates self-contained challenge nonces.
type Noncer interface {
	// Create returns a fresh nonce string. It fails only if the
	// randomness source fails.
	Create() (string, error)

	// Validate checks the nonce's format, authenticity and age.
	// It returns core.ErrInvalidNonce on any failure.
	Validate(nonce string) error
}

// NonceStore records consumed nonces so a signature cannot be replayed
// within the nonce's validity window. Optional: the service runs fully
// stateless without one.
type NonceStore interface {
	// Consume marks a nonce as used. It returns core.ErrNonceConsumed
	// if the nonce was already consumed.
	Consume(ctx context.Context, nonce string) error
}

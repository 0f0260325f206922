package ports

import "github.com/Crystara-Markets/supra-multiwallet/core"

// Tokenizer mints and checks the bearer credential standing in for the
// wallet session after authentication succeeds.
type Tokenizer interface {
	// Issue mints a signed token binding the wallet address.
	Issue(address string) (string, error)

	// Verify returns the identity encoded in the token. Absent,
	// malformed and expired tokens are all core.ErrInvalidToken; the
	// caller must not distinguish them.
	Verify(token string) (*core.Identity, error)
}

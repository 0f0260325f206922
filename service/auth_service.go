// Package service sequences the authentication core: nonce issuance,
// nonce validation, signature verification and token issuance. Every
// operation is a side-effect-free function of its inputs plus the
// injected components, so the service scales horizontally with no
// cross-request coordination.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Crystara-Markets/supra-multiwallet/core"
	"github.com/Crystara-Markets/supra-multiwallet/ports"
)

// AuthService handles authentication business logic.
type AuthService struct {
	noncer    ports.Noncer
	verifier  ports.SignatureVerifier
	tokenizer ports.Tokenizer
	eventPub  ports.EventPublisher

	// replayGuard, when set, records consumed nonces so a captured
	// signature cannot be replayed within the nonce validity window.
	// Nil keeps the fully stateless behavior.
	replayGuard ports.NonceStore
}

// Option configures an AuthService.
type Option func(*AuthService)

// WithReplayGuard enables consumed-nonce tracking.
func WithReplayGuard(store ports.NonceStore) Option {
	return func(s *AuthService) { s.replayGuard = store }
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	noncer ports.Noncer,
	verifier ports.SignatureVerifier,
	tokenizer ports.Tokenizer,
	eventPub ports.EventPublisher,
	opts ...Option,
) *AuthService {
	s := &AuthService{
		noncer:    noncer,
		verifier:  verifier,
		tokenizer: tokenizer,
		eventPub:  eventPub,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateNonce issues a fresh challenge nonce.
func (s *AuthService) CreateNonce() (string, error) {
	nonce, err := s.noncer.Create()
	if err != nil {
		return "", fmt.Errorf("failed to create nonce: %w", err)
	}
	return nonce, nil
}

// Authenticate runs the challenge/response sequence: the nonce must
// validate and the signature must verify before a token is minted. No
// partial state is committed on any failure path.
func (s *AuthService) Authenticate(ctx context.Context, address string, envelope core.SignatureEnvelope, nonce string) (string, error) {
	if err := s.noncer.Validate(nonce); err != nil {
		return "", err
	}

	if err := s.verifier.Verify(core.SignMessage, envelope, address); err != nil {
		// Malformed envelope fields and cryptographic mismatch are the
		// same outcome to the caller.
		if errors.Is(err, core.ErrInvalidSignature) {
			return "", err
		}
		return "", fmt.Errorf("%v: %w", err, core.ErrInvalidSignature)
	}

	// Consume only after the signature checks out, so a failed attempt
	// does not burn a still-valid nonce.
	if s.replayGuard != nil {
		if err := s.replayGuard.Consume(ctx, nonce); err != nil {
			return "", err
		}
	}

	token, err := s.tokenizer.Issue(address)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.eventPub.PublishLogin(ctx, address); err != nil {
		// The token is already minted; event delivery is advisory.
		log.Printf("warning: failed to publish login event: %v", err)
	}

	return token, nil
}

// VerifySession checks a session token and returns the identity it
// binds. All failures are core.ErrInvalidToken.
func (s *AuthService) VerifySession(token string) (*core.Identity, error) {
	return s.tokenizer.Verify(token)
}

// Logout publishes a logout event for the token's address, if the
// token still verifies. There is no server-side session state to
// clear; the transport drops the cookie either way.
func (s *AuthService) Logout(ctx context.Context, token string) {
	identity, err := s.tokenizer.Verify(token)
	if err != nil {
		return
	}

	if err := s.eventPub.PublishLogout(ctx, identity.Address); err != nil {
		log.Printf("warning: failed to publish logout event: %v", err)
	}
}

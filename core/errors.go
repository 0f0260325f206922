package core

import "errors"

var (
	ErrInvalidNonce     = errors.New("invalid or expired nonce")
	ErrNonceConsumed    = errors.New("nonce already consumed")
	ErrInvalidSignature = errors.New("signature verification failed")
	ErrInvalidToken     = errors.New("invalid token")
)

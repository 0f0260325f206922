package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Crystara-Markets/supra-multiwallet/core"
	"github.com/Crystara-Markets/supra-multiwallet/service"
)

// AuthHandlers contains HTTP handlers for the auth endpoints.
type AuthHandlers struct {
	authService *service.AuthService
	cookies     CookieWriter
}

// NewAuthHandlers creates new auth handlers. secureCookies should be
// true in production so the session cookie is only sent over TLS.
func NewAuthHandlers(authService *service.AuthService, secureCookies bool) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		cookies:     CookieWriter{Secure: secureCookies},
	}
}

// Nonce issues a fresh challenge nonce as plain text.
func (h *AuthHandlers) Nonce(c *gin.Context) {
	nonce, err := h.authService.CreateNonce()
	if err != nil {
		log.Printf("failed to create nonce: %v", err)
		c.String(http.StatusInternalServerError, "failed to create nonce")
		return
	}

	c.String(http.StatusOK, nonce)
}

// CreateJWT verifies a signed challenge and mints a session token.
// Clients get coarse failure messages only; diagnostic detail stays in
// the server log.
func (h *AuthHandlers) CreateJWT(c *gin.Context) {
	var req struct {
		Address   string `json:"address" binding:"required"`
		Signature struct {
			Signature string `json:"signature" binding:"required"`
			PublicKey string `json:"publicKey" binding:"required"`
		} `json:"signature" binding:"required"`
		Nonce string `json:"nonce" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or malformed fields"})
		return
	}

	envelope := core.SignatureEnvelope{
		Signature: req.Signature.Signature,
		PublicKey: req.Signature.PublicKey,
	}

	token, err := h.authService.Authenticate(c.Request.Context(), req.Address, envelope, req.Nonce)
	if err != nil {
		log.Printf("authentication failed for %s: %v", req.Address, err)

		switch {
		case errors.Is(err, core.ErrInvalidNonce), errors.Is(err, core.ErrNonceConsumed):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired nonce"})
		case errors.Is(err, core.ErrInvalidSignature):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "signature verification failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "address": req.Address})
}

// WalletLogin persists a verified session token as the auth cookie.
func (h *AuthHandlers) WalletLogin(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing token"})
		return
	}

	if _, err := h.authService.VerifySession(req.Token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	h.cookies.Set(c, req.Token)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// WalletLogout clears the auth cookie. There is no server-side state
// to tear down, so logout always succeeds.
func (h *AuthHandlers) WalletLogout(c *gin.Context) {
	if token, err := c.Cookie(CookieName); err == nil {
		h.authService.Logout(c.Request.Context(), token)
	}

	h.cookies.Clear(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Check reports whether the request carries a valid session cookie.
func (h *AuthHandlers) Check(c *gin.Context) {
	token, err := c.Cookie(CookieName)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	identity, err := h.authService.VerifySession(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"authenticated": true, "address": identity.Address})
}

// Wallet is a protected resource handler; the middleware has already
// matched the session address against the path address.
func (h *AuthHandlers) Wallet(c *gin.Context) {
	address, exists := c.Get(ContextAddressKey)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "address not found in context"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"address": address})
}

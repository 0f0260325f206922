package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieName is the cookie carrying the wallet session token.
const CookieName = "authToken"

// cookieTTL matches the session token lifetime.
const cookieTTL = 24 * time.Hour

// CookieWriter manages the auth cookie lifecycle. The cookie is always
// HttpOnly and SameSite=Lax; Secure is enabled in production.
type CookieWriter struct {
	Secure bool
}

// Set writes the session token with a lifetime matching the token's.
func (w CookieWriter) Set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(cookieTTL.Seconds()), "/", "", w.Secure, true)
}

// Clear overwrites the cookie with an immediately-expiring empty value.
func (w CookieWriter) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", w.Secure, true)
}

package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Crystara-Markets/supra-multiwallet/service"
)

// ContextAddressKey is the gin context key holding the verified wallet
// address.
const ContextAddressKey = "walletAddress"

// RequireWallet guards a route carrying an :address path parameter: the
// request must present a valid session cookie, and the session address
// must match the path address. Hex wallet addresses compare
// case-insensitively.
func RequireWallet(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		identity, err := authService.VerifySession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		if requested := c.Param("address"); !strings.EqualFold(identity.Address, requested) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "address mismatch"})
			return
		}

		c.Set(ContextAddressKey, identity.Address)

		c.Next()
	}
}

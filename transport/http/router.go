// Package http exposes the authentication core over HTTP. All
// endpoints are stateless: the only bootstrap state is the server
// secret injected into the components at startup.
package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Crystara-Markets/supra-multiwallet/service"
)

// SetupRouter sets up the Gin router.
func SetupRouter(authService *service.AuthService, secureCookies bool) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowCredentials = false
	router.Use(cors.New(corsCfg))

	handlers := NewAuthHandlers(authService, secureCookies)

	router.GET("/nonce", handlers.Nonce)
	router.POST("/create-jwt", handlers.CreateJWT)
	router.POST("/wallet-login", handlers.WalletLogin)
	router.POST("/wallet-logout", handlers.WalletLogout)
	router.GET("/check", handlers.Check)

	// Protected resources
	wallet := router.Group("/wallet")
	wallet.Use(RequireWallet(authService))
	{
		wallet.GET("/:address", handlers.Wallet)
	}

	return router
}

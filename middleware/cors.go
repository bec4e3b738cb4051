package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the Studio plugin (and browser-based tooling) to call the relay
// from any origin. The relay carries no cookies or sessions, so a permissive
// policy is safe here.
func CORS() gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowCredentials = false
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Content-Type", "Accept"}
	return cors.New(config)
}

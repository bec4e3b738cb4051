package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studioforge/relay/common"
	"github.com/studioforge/relay/common/config"
)

// Status handles GET / with a static health payload: running flag, the
// default model, and which providers have a server-held fallback credential.
func Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"running":            true,
		"version":            common.Version,
		"default_model":      config.DefaultModel,
		"fallback_providers": config.FallbackProviders(),
	})
}

// RelayNotFound answers unmatched routes with the route inventory so plugin
// misconfigurations are easy to spot from the client side.
func RelayNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":   "Not Found",
		"message": "no route matches " + c.Request.Method + " " + c.Request.URL.Path,
		"availableRoutes": []string{
			"GET /",
			"POST /generate",
		},
	})
}

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/studioforge/relay/controller"
)

// SetRouter registers the relay's public surface: the status endpoint, the
// single generation endpoint, and the catch-all 404.
func SetRouter(server *gin.Engine) {
	server.GET("/", controller.Status)
	server.POST("/generate", controller.RelayGenerate)
	server.NoRoute(controller.RelayNotFound)
}

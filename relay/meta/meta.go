// Package meta carries the per-request relay parameters resolved before any
// adaptor is invoked.
package meta

import (
	"github.com/gin-gonic/gin"

	"github.com/studioforge/relay/common/ctxkey"
	"github.com/studioforge/relay/relay/provider"
)

type Meta struct {
	Provider  provider.Provider
	ModelName string
	// APIKey is the resolved credential for the outbound call (caller-supplied
	// or the server-held fallback, depending on deployment policy).
	APIKey string
	// RequestId annotates upstream failures in logs.
	RequestId string
}

// GetByContext assembles a Meta from values previously stored on the gin
// context by the relay controller.
func GetByContext(c *gin.Context, p provider.Provider, modelName, apiKey string) *Meta {
	return &Meta{
		Provider:  p,
		ModelName: modelName,
		APIKey:    apiKey,
		RequestId: c.GetString(ctxkey.RequestId),
	}
}

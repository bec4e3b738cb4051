package controller

import (
	"net/http"

	gmw "github.com/Laisky/gin-middlewares/v6"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/studioforge/relay/common/ctxkey"
	"github.com/studioforge/relay/common/helper"
	relaycontroller "github.com/studioforge/relay/relay/controller"
)

// RelayGenerate handles POST /generate. The relay pipeline returns either a
// normalized success payload or an error with the status to respond with;
// every failure is logged before the response is written.
func RelayGenerate(c *gin.Context) {
	resp, bizErr := relaycontroller.RelayGenerateHelper(c)
	if bizErr != nil {
		gmw.GetLogger(c).Error("relay request failed",
			zap.Int("status_code", bizErr.StatusCode),
			zap.String("error", bizErr.Error.Error),
			zap.String("details", bizErr.Details),
			zap.String("provider", c.GetString(ctxkey.Provider)),
			zap.String("model", c.GetString(ctxkey.RequestModel)),
			zap.NamedError("raw_error", bizErr.RawError))
		bizErr.Details = appendRequestId(bizErr.Details, c)
		c.JSON(bizErr.StatusCode, bizErr.Error)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func appendRequestId(details string, c *gin.Context) string {
	id := c.GetString(helper.RequestIdKey)
	if id == "" {
		return details
	}
	if details == "" {
		return "request id: " + id
	}
	return helper.MessageWithRequestId(details, id)
}

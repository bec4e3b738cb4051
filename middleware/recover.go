package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/studioforge/relay/common"
	"github.com/studioforge/relay/common/config"
	"github.com/studioforge/relay/common/logger"
)

// RelayPanicRecover is the single catch-all for unexpected panics anywhere in
// the pipeline. The stack trace goes to the log only; the caller gets a
// generic 500, with the panic value exposed solely in debug mode.
func RelayPanicRecover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				body, _ := common.GetRequestBody(c)
				logger.Logger.Error("panic detected",
					zap.Any("panic", err),
					zap.String("stacktrace", string(debug.Stack())),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.ByteString("request_body", body))
				resp := gin.H{"error": "Internal server error"}
				if config.DebugEnabled {
					resp["details"] = "panic detected: " + stringify(err)
				}
				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}

func stringify(v any) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	if s, ok := v.(string); ok {
		return s
	}
	return "unexpected panic value"
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studioforge/relay/common/ctxkey"
	"github.com/studioforge/relay/monitor"
)

// PrometheusMiddleware records per-request relay metrics. The provider label
// is resolved after the handler runs, since provider selection happens inside
// the relay pipeline.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		monitor.RecordRelayRequest(
			c.GetString(ctxkey.Provider),
			c.Writer.Status(),
			time.Since(start).Seconds(),
		)
	}
}

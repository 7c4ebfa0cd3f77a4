package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kunallagu/shopify-gst-invoice-app-2/internal/logger"
)

// RequestLog logs one line per request with method, path, status and latency.
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
		)
	}
}

package middleware

import (
	"time"

	"destiny-global-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request, including the caller's Origin
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		reqID, _ := c.Get("RequestID")
		logger.Log.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"origin", c.Request.Header.Get("Origin"),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", reqID,
		)
	}
}

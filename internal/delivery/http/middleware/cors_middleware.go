package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSPolicy decides which browser origins may call the API
type CORSPolicy struct {
	AllowedOrigins []string
	// AllowAll accepts every origin. Off unless explicitly configured.
	AllowAll bool
}

func (p CORSPolicy) allows(origin string) bool {
	if origin == "" || p.AllowAll {
		return true
	}
	origin = strings.TrimRight(origin, "/")
	for _, allowed := range p.AllowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// CORSMiddleware enforces the allow-list:
// - no Origin header (curl, server-to-server): allowed, no CORS headers needed
// - listed origin: CORS headers echo the origin
// - anything else: no CORS headers, preflight rejected with 403
func CORSMiddleware(policy CORSPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		isAllowed := policy.allows(origin)

		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			if isAllowed {
				c.AbortWithStatus(http.StatusNoContent)
			} else {
				c.AbortWithStatus(http.StatusForbidden)
			}
			return
		}

		c.Next()
	}
}

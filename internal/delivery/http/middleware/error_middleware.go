package middleware

import (
	"errors"
	"net/http"

	"destiny-global-backend/internal/delivery/http/response"
	"destiny-global-backend/pkg/apperror"
	"destiny-global-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error pushed with c.Error. Wrapped error
// detail reaches the client only when exposeDetail is set (development).
func ErrorHandler(exposeDetail bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed", "path", c.Request.URL.Path, "error", appErr.Detail())
			}
			detail := ""
			if exposeDetail {
				detail = appErr.Detail()
			}
			response.Error(c, appErr.Code, appErr.Message, detail)
			return
		}

		logger.Log.Error("Internal server error", "path", c.Request.URL.Path, "error", err)
		detail := ""
		if exposeDetail {
			detail = err.Error()
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error", detail)
	}
}

// Recovery turns a panic into the generic 500 envelope
func Recovery(exposeDetail bool) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.Log.Error("Server error", "path", c.Request.URL.Path, "panic", recovered)
		detail := ""
		if exposeDetail {
			if err, ok := recovered.(error); ok {
				detail = err.Error()
			} else if s, ok := recovered.(string); ok {
				detail = s
			}
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error", detail)
		c.Abort()
	})
}

// NotFound is the fallback for unmatched routes
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found", "")
	}
}

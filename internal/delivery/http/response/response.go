package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response. Clients rely on success,
// message and the optional error; data and request_id are extra fields that
// may be ignored. request_id echoes the X-Request-ID header and is present on
// every envelope, including 404s.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response. detail is only set in development mode.
func Error(c *gin.Context, code int, message string, detail string) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     detail,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}

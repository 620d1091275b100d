package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"photobooking/internal/gateway"
)

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// Abort writes an error envelope and stops the handler chain.
func Abort(c *gin.Context, statusCode int, code string, message string) {
	Error(c, statusCode, code, message)
	c.Abort()
}

// GatewayError maps a gateway failure onto the error envelope.
func GatewayError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gateway.ErrNotFound):
		Error(c, http.StatusNotFound, string(gateway.KindNotFound), "Requested object was not found")
	case errors.Is(err, gateway.ErrConfiguration):
		Error(c, http.StatusServiceUnavailable, string(gateway.KindConfiguration), "External service is not configured")
	case errors.Is(err, gateway.ErrTransportFailure):
		Error(c, http.StatusBadGateway, string(gateway.KindTransportFailure), "External service request failed")
	default:
		Error(c, http.StatusInternalServerError, string(gateway.KindUnknown), "Unexpected error")
	}
}

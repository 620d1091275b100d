package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"photobooking/internal/pkg/response"
)

// ErrorLogger logs every request and recovers from panics. 5xx responses and
// handler errors are logged at error level with the stack.
func ErrorLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				log.Error("request panic", append(requestFields(c, start), zap.Error(err), zap.ByteString("stack", debug.Stack()))...)

				if strings.HasPrefix(c.Request.URL.Path, "/api/") {
					response.Abort(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal Server Error")
				} else {
					c.AbortWithStatus(http.StatusInternalServerError)
				}
				return
			}

			fields := requestFields(c, start)
			switch {
			case len(c.Errors) > 0:
				for _, err := range c.Errors {
					log.Error("request error", append(fields, zap.Error(err.Err), zap.Any("meta", err.Meta))...)
				}
			case c.Writer.Status() >= http.StatusInternalServerError:
				log.Error("request failed", fields...)
			default:
				log.Info("request", fields...)
			}
		}()

		c.Next()
	}
}

func requestFields(c *gin.Context, start time.Time) []zap.Field {
	return []zap.Field{
		zap.Int("status", c.Writer.Status()),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("query", c.Request.URL.RawQuery),
		zap.String("client_ip", c.ClientIP()),
		zap.String("request_id", requestID(c)),
		zap.Duration("latency", time.Since(start)),
	}
}

func requestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = c.GetHeader("X-Request-Id")
	}
	return requestID
}

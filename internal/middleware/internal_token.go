package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"photobooking/internal/pkg/response"
)

// OpsToken protects operator endpoints with a static bearer token. With no
// token configured the endpoints are disabled.
func OpsToken(expected string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" {
			logAuthFailure(log, c, http.StatusServiceUnavailable, "token_not_configured")
			response.Abort(c, http.StatusServiceUnavailable, "OPS_DISABLED", "Operator endpoints are disabled")
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logAuthFailure(log, c, http.StatusUnauthorized, "missing_auth")
			response.Abort(c, http.StatusUnauthorized, "AUTH_MISSING", "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logAuthFailure(log, c, http.StatusUnauthorized, "invalid_auth_format")
			response.Abort(c, http.StatusUnauthorized, "AUTH_INVALID", "Authorization header must be 'Bearer <token>'")
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(expected)) != 1 {
			logAuthFailure(log, c, http.StatusForbidden, "invalid_token")
			response.Abort(c, http.StatusForbidden, "AUTH_INVALID", "Invalid operator token")
			return
		}

		c.Next()
	}
}

func logAuthFailure(log *zap.Logger, c *gin.Context, status int, reason string) {
	log.Warn("ops auth rejected",
		zap.Int("status", status),
		zap.String("reason", reason),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", requestID(c)),
	)
}

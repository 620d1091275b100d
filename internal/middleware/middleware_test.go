package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func opsRouter(token string) *gin.Engine {
	r := gin.New()
	r.GET("/api/v1/ops/ping", OpsToken(token, zap.NewNop()), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestOpsToken(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		header string
		want   int
	}{
		{"disabled when unset", "", "Bearer x", http.StatusServiceUnavailable},
		{"missing header", "secret", "", http.StatusUnauthorized},
		{"wrong scheme", "secret", "Basic secret", http.StatusUnauthorized},
		{"wrong token", "secret", "Bearer nope", http.StatusForbidden},
		{"valid", "secret", "Bearer secret", http.StatusNoContent},
		{"scheme case insensitive", "secret", "bearer secret", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/ops/ping", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			opsRouter(tt.token).ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2, zap.NewNop())
	r := gin.New()
	r.POST("/book", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/book", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// other clients keep their own budget
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/book", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(0, zap.NewNop())
	r := gin.New()
	r.GET("/", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestErrorLogger_RecoversPanic(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(ErrorLogger(zap.New(core)))
	r.GET("/api/boom", func(c *gin.Context) { panic("kaboom") })
	r.GET("/page", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_SERVER_ERROR")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	assert.Equal(t, 2, logs.FilterMessage("request panic").Len())
}

func TestErrorLogger_LogsHandlerErrors(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(ErrorLogger(zap.New(core)))
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("insert failed"))
		c.Status(http.StatusInternalServerError)
	})
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, 1, logs.FilterMessage("request error").Len())
	assert.Equal(t, 1, logs.FilterMessage("request").Len())
}

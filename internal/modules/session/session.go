// Package session is the access gate of the site: a signed cookie carrying a
// single logged-in flag. No identity is recorded and no credentials are
// checked.
package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"photobooking/internal/pkg/jwt"
)

const (
	CookieName = "pb_session"

	loggedInKey = "session_logged_in"
)

type Manager struct {
	tokens *jwt.Service
	secure bool
	log    *zap.Logger
}

// NewManager builds a Manager. secure marks the cookie HTTPS-only.
func NewManager(tokens *jwt.Service, secure bool, log *zap.Logger) *Manager {
	return &Manager{tokens: tokens, secure: secure, log: log}
}

// Middleware resolves the session flag once per request. A missing, expired
// or tampered cookie means anonymous.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		loggedIn := false
		if raw, err := c.Cookie(CookieName); err == nil && raw != "" {
			claims, err := m.tokens.ValidateToken(raw)
			if err != nil {
				m.log.Debug("session cookie rejected", zap.Error(err))
			} else {
				loggedIn = claims.LoggedIn
			}
		}
		c.Set(loggedInKey, loggedIn)
		c.Next()
	}
}

// LoggedIn reports the session flag resolved by Middleware.
func LoggedIn(c *gin.Context) bool {
	return c.GetBool(loggedInKey)
}

// SignIn marks the client as authenticated.
func (m *Manager) SignIn(c *gin.Context) error {
	token, err := m.tokens.GenerateToken(true)
	if err != nil {
		return err
	}
	m.setCookie(c, token, int(m.tokens.TTL().Seconds()))
	c.Set(loggedInKey, true)
	return nil
}

// SignOut clears the flag.
func (m *Manager) SignOut(c *gin.Context) {
	m.setCookie(c, "", -1)
	c.Set(loggedInKey, false)
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, maxAge, "/", "", m.secure, true)
}

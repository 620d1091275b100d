package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	sessions *Manager
}

func NewHandler(sessions *Manager) *Handler {
	return &Handler{sessions: sessions}
}

// RegisterRoutes mounts the login, register and logout pages. limit guards
// the form posts.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, limit gin.HandlerFunc) {
	rg.GET("/login", h.LoginPage)
	rg.POST("/login", limit, h.Login)
	rg.GET("/register", h.RegisterPage)
	rg.POST("/register", limit, h.Register)
	rg.GET("/logout", h.Logout)
}

func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"LoggedIn": LoggedIn(c)})
}

// Login accepts any submission.
func (h *Handler) Login(c *gin.Context) {
	if err := h.sessions.SignIn(c); err != nil {
		_ = c.Error(err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Could not sign you in. Please try again."})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"LoggedIn": LoggedIn(c)})
}

// Register creates no account.
func (h *Handler) Register(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) Logout(c *gin.Context) {
	h.sessions.SignOut(c)
	c.Redirect(http.StatusSeeOther, "/")
}

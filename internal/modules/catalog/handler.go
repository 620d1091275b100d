package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photobooking/internal/modules/session"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Home)
	rg.GET("/photographers", h.Photographers)
	rg.GET("/services", h.Services)
}

func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"LoggedIn": session.LoggedIn(c),
		"Services": h.service.Services(),
	})
}

func (h *Handler) Photographers(c *gin.Context) {
	list, err := h.service.Photographers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"LoggedIn": session.LoggedIn(c),
			"Message":  "We could not load our photographers right now.",
		})
		return
	}

	c.HTML(http.StatusOK, "photographers.html", gin.H{
		"LoggedIn":      session.LoggedIn(c),
		"Photographers": list,
	})
}

func (h *Handler) Services(c *gin.Context) {
	c.HTML(http.StatusOK, "services.html", gin.H{
		"LoggedIn": session.LoggedIn(c),
		"Services": h.service.Services(),
	})
}

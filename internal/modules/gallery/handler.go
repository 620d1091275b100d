package gallery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"photobooking/internal/gateway"
	"photobooking/internal/modules/session"
	"photobooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the client gallery page behind limit.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, limit gin.HandlerFunc) {
	rg.GET("/gallery/:event_id", limit, h.View)
}

func (h *Handler) RegisterOpsRoutes(rg *gin.RouterGroup) {
	rg.POST("/galleries/:event_id", h.Assemble)
	rg.POST("/galleries/:event_id/notify", h.Notify)
}

// View shows a gallery to a client. Without a code it asks for one.
func (h *Handler) View(c *gin.Context) {
	eventID := c.Param("event_id")
	code := c.Query("code")
	data := gin.H{"LoggedIn": session.LoggedIn(c), "EventID": eventID}

	if code == "" {
		c.HTML(http.StatusOK, "gallery.html", data)
		return
	}

	g, err := h.service.Open(c.Request.Context(), eventID, code)
	switch {
	case err == nil:
		data["Gallery"] = g
		c.HTML(http.StatusOK, "gallery.html", data)
	case errors.Is(err, ErrAccessDenied):
		data["Error"] = "That access code is not valid for this gallery."
		c.HTML(http.StatusForbidden, "gallery.html", data)
	default:
		_ = c.Error(err)
		data["Message"] = "Your gallery is not available right now."
		c.HTML(http.StatusServiceUnavailable, "error.html", data)
	}
}

func (h *Handler) Assemble(c *gin.Context) {
	var req AssembleRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
			return
		}
	}

	g, err := h.service.Assemble(c.Request.Context(), c.Param("event_id"), req.Filenames)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, g)
}

func (h *Handler) Notify(c *gin.Context) {
	var req NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.Deliver(c.Request.Context(), c.Param("event_id"), req.Filenames, Recipient{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrStorageUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "STORAGE_DISABLED", "Object storage is not configured")
	case errors.Is(err, ErrNotifierUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "NOTIFY_DISABLED", "Notifications are not configured")
	case errors.Is(err, ErrInvalidFilename):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Filenames must be plain names without a path")
	case errors.Is(err, ErrNoRecipient):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email or phone is required")
	case errors.Is(err, ErrEmptyGallery):
		response.Error(c, http.StatusUnprocessableEntity, "EMPTY_GALLERY", "No photos could be published for this event")
	case gateway.KindOf(err) != gateway.KindUnknown:
		response.GatewayError(c, err)
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build gallery")
	}
}

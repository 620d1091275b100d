package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"photobooking/internal/modules/session"
	"photobooking/internal/pkg/response"
)

type Handler struct {
	service         *Service
	catalog         PhotographerLister
	notifyOnBooking bool
	log             *zap.Logger
}

func NewHandler(service *Service, catalog PhotographerLister, notifyOnBooking bool, log *zap.Logger) *Handler {
	return &Handler{
		service:         service,
		catalog:         catalog,
		notifyOnBooking: notifyOnBooking,
		log:             log,
	}
}

// RegisterRoutes mounts the booking pages. limit guards the form post.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, limit gin.HandlerFunc) {
	rg.GET("/book", h.BookingForm)
	rg.POST("/book", limit, h.SubmitBooking)
	rg.GET("/success", h.Success)
}

// RegisterOpsRoutes mounts the operator JSON endpoints.
func (h *Handler) RegisterOpsRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.POST("/bookings/:id/confirm", h.Confirm)
}

func (h *Handler) BookingForm(c *gin.Context) {
	list, err := h.catalog.Photographers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		h.errorPage(c, "We could not load the booking form right now.")
		return
	}

	c.HTML(http.StatusOK, "book.html", gin.H{
		"LoggedIn":      session.LoggedIn(c),
		"Photographers": list,
	})
}

func (h *Handler) SubmitBooking(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{
			"LoggedIn": session.LoggedIn(c),
			"Message":  "The booking form could not be read.",
		})
		return
	}

	id, err := h.service.SubmitBooking(c.Request.Context(), FormValues(c.Request.PostForm))
	if err != nil {
		_ = c.Error(err)
		h.errorPage(c, "Your booking could not be saved. Please try again.")
		return
	}

	if h.notifyOnBooking {
		if _, err := h.service.SendConfirmation(c.Request.Context(), id); err != nil {
			h.log.Warn("booking confirmation not sent", zap.String("booking_id", id), zap.Error(err))
		}
	}

	c.Redirect(http.StatusSeeOther, "/success")
}

func (h *Handler) Success(c *gin.Context) {
	c.HTML(http.StatusOK, "success.html", gin.H{"LoggedIn": session.LoggedIn(c)})
}

func (h *Handler) errorPage(c *gin.Context, msg string) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"LoggedIn": session.LoggedIn(c),
		"Message":  msg,
	})
}

/* ---------- OPS ---------- */

func (h *Handler) ListBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	list, err := h.service.Recent(c.Request.Context(), limit)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, ListBookingsResponse{Bookings: list, Count: len(list)})
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Confirm(c *gin.Context) {
	d, err := h.service.SendConfirmation(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, d)
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrNotifierUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "NOTIFY_DISABLED", "Notifications are not configured")
	case errors.Is(err, ErrNotificationFailed):
		response.Error(c, http.StatusBadGateway, "NOTIFY_FAILED", "Confirmation email was not delivered")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to send confirmation")
	}
}

// Package server assembles the HTTP router from the site's modules.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"photobooking/internal/database"
	"photobooking/internal/metrics"
	"photobooking/internal/middleware"
	"photobooking/internal/modules/booking"
	"photobooking/internal/modules/catalog"
	"photobooking/internal/modules/gallery"
	"photobooking/internal/modules/session"
	"photobooking/internal/pkg/response"
	"photobooking/web"
)

// Deps are the long-lived components built once at startup.
type Deps struct {
	DB       *gorm.DB
	Log      *zap.Logger
	Metrics  *metrics.Metrics
	Sessions *session.Manager

	Catalog  *catalog.Service
	Bookings *booking.Service
	Gallery  *gallery.Service

	NotifyOnBooking bool
	OpsToken        string
	RateLimitPerMin int
}

func NewRouter(d Deps) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.ErrorLogger(d.Log))
	r.Use(d.Metrics.Middleware())
	r.StaticFS("/static", http.FS(web.Static()))

	r.GET("/healthz", health(d.DB))
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	limit := middleware.NewRateLimiter(d.RateLimitPerMin, d.Log).Middleware()

	site := r.Group("/")
	site.Use(d.Sessions.Middleware())
	{
		catalog.NewHandler(d.Catalog).RegisterRoutes(site)
		session.NewHandler(d.Sessions).RegisterRoutes(site, limit)
		booking.NewHandler(d.Bookings, d.Catalog, d.NotifyOnBooking, d.Log).RegisterRoutes(site, limit)
		gallery.NewHandler(d.Gallery).RegisterRoutes(site, limit)
	}

	ops := r.Group("/api/v1/ops")
	ops.Use(middleware.OpsToken(d.OpsToken, d.Log))
	{
		booking.NewHandler(d.Bookings, d.Catalog, false, d.Log).RegisterOpsRoutes(ops)
		gallery.NewHandler(d.Gallery).RegisterOpsRoutes(ops)
	}

	r.NoRoute(d.Sessions.Middleware(), func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"LoggedIn": session.LoggedIn(c),
			"Message":  "The page you are looking for does not exist.",
		})
	})

	return r, nil
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := database.Ping(ctx, db); err != nil {
			response.Error(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database is not reachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	}
}

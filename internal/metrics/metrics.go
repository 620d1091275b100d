package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"photobooking/internal/gateway"
)

const namespace = "photobooking"

// Metrics holds the Prometheus collectors of the site.
type Metrics struct {
	registry *prometheus.Registry

	BookingsSubmitted *prometheus.CounterVec
	Notifications     *prometheus.CounterVec
	GatewayErrors     *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry, together with the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		BookingsSubmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_submitted_total",
			Help:      "Booking submissions by result.",
		}, []string{"result"}),

		Notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification deliveries by channel and outcome.",
		}, []string{"channel", "outcome"}),

		GatewayErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_errors_total",
			Help:      "Classified external gateway failures.",
		}, []string{"gateway", "kind"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) BookingSubmitted(ok bool) {
	m.BookingsSubmitted.WithLabelValues(result(ok)).Inc()
}

// NotificationSent implements notify.Outcomes.
func (m *Metrics) NotificationSent(channel string, ok bool) {
	m.Notifications.WithLabelValues(channel, result(ok)).Inc()
}

// GatewayError implements gateway.Observer.
func (m *Metrics) GatewayError(component string, kind gateway.Kind) {
	m.GatewayErrors.WithLabelValues(component, string(kind)).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request latency. Unmatched routes share one label.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

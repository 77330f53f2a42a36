package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business counters are package-level so services can increment them without
// carrying a metrics handle through every constructor.
var (
	ConsultationsBooked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chainadvisory_consultations_booked_total",
		Help: "Consultations booked",
	})
	CreditsConsumed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chainadvisory_credits_consumed_total",
		Help: "Subscription consultation credits consumed",
	})
	SubscriptionsActivated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chainadvisory_subscriptions_activated_total",
		Help: "Subscriptions activated by plan",
	}, []string{"plan"})
	ReportsRequested = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chainadvisory_reports_requested_total",
		Help: "Reports requested by type",
	}, []string{"report_type"})
	ProjectsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chainadvisory_projects_submitted_total",
		Help: "Projects submitted for expert review",
	})
	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chainadvisory_emails_sent_total",
		Help: "Notification emails by type and delivery outcome",
	}, []string{"type", "outcome"})
)

// Metrics holds the per-request HTTP collectors for the API.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers and returns the HTTP metrics.
func New() *Metrics {
	return &Metrics{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "chainadvisory_http_requests_total",
			Help: "Total HTTP requests by method, path and status code",
		}, []string{"method", "path", "status"}),
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chainadvisory_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// Middleware records request counts and latency per route.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			m.requestsTotal.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			m.requestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

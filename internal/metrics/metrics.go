package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pazarmetre_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pazarmetre_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	BulkRowsAccepted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pazarmetre_bulk_rows_accepted_total",
			Help: "Accepted rows in admin bulk price entry",
		},
	)

	BulkRowsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pazarmetre_bulk_rows_skipped_total",
			Help: "Rows skipped during admin bulk price entry (invalid name/price)",
		},
	)
)

// Middleware istek sayaçlarını ve süre histogramını besler. Path olarak
// route pattern'i kullanılır; ham URL kullanmak kardinaliteyi patlatır.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		status := strconv.Itoa(c.Response().StatusCode())

		httpRequestsTotal.WithLabelValues(c.Method(), path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Method(), path, status).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler, /metrics için promhttp'yi fiber'a uyarlayarak döndürür.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// Package metrics provides Prometheus metrics collection for the kit service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// UploadsTotal tracks upload validation outcomes.
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kit_uploads_total",
			Help: "Total number of upload validations by result",
		},
		[]string{"result"},
	)

	// LayerComputationsTotal tracks preview layer computations.
	LayerComputationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kit_layer_computations_total",
			Help: "Total number of preview layer computations",
		},
	)

	// LayerComputationDuration tracks preview layer computation duration.
	LayerComputationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kit_layer_computation_duration_seconds",
			Help:    "Preview layer computation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// OrdersTotal tracks order placements by outcome.
	OrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kit_orders_total",
			Help: "Total number of order placements by result",
		},
		[]string{"result"},
	)

	// NameChecksTotal tracks team name availability checks.
	NameChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kit_name_checks_total",
			Help: "Total number of team name availability checks by result",
		},
		[]string{"result"},
	)

	// ActiveSessions tracks the number of live customization sessions.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kit_active_sessions",
			Help: "Current number of active customization sessions",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordUpload records an upload validation outcome.
func RecordUpload(result string) {
	UploadsTotal.WithLabelValues(result).Inc()
}

// RecordLayerComputation records one preview layer computation.
func RecordLayerComputation(duration time.Duration) {
	LayerComputationsTotal.Inc()
	LayerComputationDuration.Observe(duration.Seconds())
}

// RecordOrder records an order placement outcome.
func RecordOrder(result string) {
	OrdersTotal.WithLabelValues(result).Inc()
}

// RecordNameCheck records a team name availability check outcome.
func RecordNameCheck(result string) {
	NameChecksTotal.WithLabelValues(result).Inc()
}

// SetActiveSessions updates the active session gauge.
func SetActiveSessions(count int) {
	ActiveSessions.Set(float64(count))
}

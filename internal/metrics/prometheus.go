package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// CheckoutsInitiated tracks before-checkout calls by gateway
	CheckoutsInitiated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkouts_initiated_total",
			Help: "Total number of checkout sessions initiated",
		},
		[]string{"gateway"},
	)

	// CapturesTotal tracks capture attempts by outcome
	CapturesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "captures_total",
			Help: "Total number of order capture attempts",
		},
		[]string{"outcome"},
	)

	// MpesaCallbacksTotal tracks STK callbacks by recorded status
	MpesaCallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mpesa_callbacks_total",
			Help: "Total number of STK push callbacks received",
		},
		[]string{"status"},
	)

	// MpesaPollRunsTotal tracks pending-transaction poll sweeps
	MpesaPollRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mpesa_poll_runs_total",
			Help: "Total number of pending-transaction poll sweeps",
		},
	)
)

// PrometheusMiddleware creates a Gin middleware for automatic metrics collection
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		RequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

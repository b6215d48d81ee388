// Package metrics provides Prometheus metrics collection for the shipment service.
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

	// BoxAssignmentsTotal tracks box assignment operations by outcome.
	BoxAssignmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "box_assignments_total",
			Help: "Total number of box assignment operations",
		},
		[]string{"status"},
	)

	// BoxReleasesTotal tracks box release operations by outcome.
	BoxReleasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "box_releases_total",
			Help: "Total number of box release operations",
		},
		[]string{"status"},
	)

	// AllocationDuration tracks how long assignment transactions take.
	AllocationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "box_assignment_duration_seconds",
			Help:    "Box assignment transaction duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
	)

	// ReleaseDuration tracks how long release transactions take.
	ReleaseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "box_release_duration_seconds",
			Help:    "Box release transaction duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
	)

	// ReleaseChargesTotal counts releases that produced a charge breakdown.
	ReleaseChargesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "release_charges_total",
			Help: "Total number of releases billed with a charge breakdown",
		},
	)

	// RackUtilization tracks the fraction of each rack's capacity in use.
	RackUtilization = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rack_utilization_ratio",
			Help: "Fraction of rack capacity currently in use",
		},
		[]string{"rack"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks the number of entries in the idempotency cache.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current number of cached idempotency entries",
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

// RecordAssignment records metrics for a box assignment operation.
func RecordAssignment(duration time.Duration, status string) {
	AllocationDuration.Observe(duration.Seconds())
	BoxAssignmentsTotal.WithLabelValues(status).Inc()
}

// RecordRelease records metrics for a box release operation.
func RecordRelease(duration time.Duration, status string) {
	ReleaseDuration.Observe(duration.Seconds())
	BoxReleasesTotal.WithLabelValues(status).Inc()
}

// RecordRackUtilization updates the utilization gauge for a rack.
func RecordRackUtilization(rackCode string, used, total int) {
	if total <= 0 {
		return
	}
	RackUtilization.WithLabelValues(rackCode).Set(float64(used) / float64(total))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheSize updates the cache size gauge.
func UpdateCacheSize(size int) {
	CacheSize.Set(float64(size))
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"operation", "table"},
	)

	ReportGenerationLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "report_generation_latency_ms",
			Help:    "Weekly report generation latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"scope", "status"}, // scope: project, combined
	)

	ReportGenerationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_generation_count",
			Help: "Total number of weekly reports generated",
		},
		[]string{"scope", "status"},
	)
)

// RecordHTTPRequestDuration records the latency of one HTTP request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordDBQueryDuration records the latency of one database query.
func RecordDBQueryDuration(operation, table string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

// RecordReportGeneration records one report generation attempt.
func RecordReportGeneration(scope, status string, duration time.Duration) {
	ReportGenerationLatency.WithLabelValues(scope, status).Observe(float64(duration.Milliseconds()))
	ReportGenerationCount.WithLabelValues(scope, status).Inc()
}

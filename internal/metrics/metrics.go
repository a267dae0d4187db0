package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// LoginTotal counts login attempts by outcome (success, failure).
	LoginTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_total",
			Help: "Total number of login attempts by outcome",
		},
		[]string{"outcome"},
	)

	// RegistrationTotal counts registrations by outcome (success, conflict, error).
	RegistrationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_registrations_total",
			Help: "Total number of registration attempts by outcome",
		},
		[]string{"outcome"},
	)
)

var (
	numericPathSegment = regexp.MustCompile(`/[0-9]+(/|$)`)
	initOnce           sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, LoginTotal, RegistrationTotal)
	})
}

// NormalizePath reduces cardinality by replacing numeric path segments with {id}.
// E.g. /movies/123 -> /movies/{id}, /movies/45/reviews -> /movies/{id}/reviews.
func NormalizePath(path string) string {
	return numericPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records duration and count for an HTTP request. Call from middleware with method, path, statusCode, duration.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// RecordLogin counts a login attempt. outcome is "success" or "failure".
func RecordLogin(outcome string) {
	LoginTotal.WithLabelValues(outcome).Inc()
}

// RecordRegistration counts a registration attempt. outcome is "success", "conflict", or "error".
func RecordRegistration(outcome string) {
	RegistrationTotal.WithLabelValues(outcome).Inc()
}

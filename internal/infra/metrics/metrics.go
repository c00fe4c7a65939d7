package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	emailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_sent_total",
			Help: "Email delivery attempts by transport and result",
		},
		[]string{"transport", "result"},
	)

	emailFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "email_fallbacks_total",
			Help: "Deliveries retried over SMTP after a provider quota error",
		},
	)

	dripEmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drip_emails_sent_total",
			Help: "Drip course lessons delivered",
		},
		[]string{"course", "day"},
	)

	dripSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drip_subscribers_skipped_total",
			Help: "Subscribers skipped during a sweep by reason",
		},
		[]string{"course", "reason"},
	)

	dripCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drip_courses_completed_total",
			Help: "Subscriptions that received the final lesson",
		},
		[]string{"course"},
	)

	dripSweepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "drip_sweep_duration_seconds",
			Help:    "Duration of one drip sweep",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"course"},
	)

	submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_submissions_total",
			Help: "Persisted form submissions by kind",
		},
		[]string{"kind"},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_errors_total",
			Help: "Total number of integration errors",
		},
		[]string{"service"},
	)
)

func RecordEmail(transport string, ok bool) {
	result := "sent"
	if !ok {
		result = "failed"
	}
	emailsSent.WithLabelValues(transport, result).Inc()
}

func RecordEmailFallback() {
	emailFallbacks.Inc()
}

func RecordDripSent(course string, day int) {
	dripEmailsSent.WithLabelValues(course, strconv.Itoa(day)).Inc()
}

func RecordDripSkipped(course, reason string) {
	dripSkipped.WithLabelValues(course, reason).Inc()
}

func RecordDripCompleted(course string) {
	dripCompleted.WithLabelValues(course).Inc()
}

func ObserveDripSweep(course string, seconds float64) {
	dripSweepDuration.WithLabelValues(course).Observe(seconds)
}

func RecordSubmission(kind string) {
	submissions.WithLabelValues(kind).Inc()
}

func RecordIntegrationError(service string) {
	integrationErrors.WithLabelValues(service).Inc()
}

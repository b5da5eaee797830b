package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	LoginAttempts   *prometheus.CounterVec
	OTPIssued       prometheus.Counter
	OTPVerified     *prometheus.CounterVec
	SessionsIssued  prometheus.Counter
	AuthFailures    prometheus.Counter
	LockoutsEngaged prometheus.Counter
	EndpointLatency *prometheus.HistogramVec

	ModerationActions    *prometheus.CounterVec
	NotificationFailures *prometheus.CounterVec
	EmailsSent           *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		LoginAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mentorhub_login_attempts_total",
			Help: "Total number of admin login attempts, labeled by outcome",
		}, []string{"outcome"}),
		OTPIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mentorhub_otp_issued_total",
			Help: "Total number of one-time passcodes issued",
		}),
		OTPVerified: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mentorhub_otp_verifications_total",
			Help: "Total number of OTP verification attempts, labeled by outcome",
		}, []string{"outcome"}),
		SessionsIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mentorhub_sessions_issued_total",
			Help: "Total number of admin session tokens issued",
		}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mentorhub_auth_failures_total",
			Help: "Total number of authentication failures",
		}),
		LockoutsEngaged: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mentorhub_lockouts_engaged_total",
			Help: "Total number of hard account locks applied",
		}),
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mentorhub_endpoint_latency_seconds",
			Help:    "Request duration in seconds, labeled by route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		ModerationActions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mentorhub_moderation_actions_total",
			Help: "Total number of moderation mutations applied, labeled by action",
		}, []string{"action"}),
		NotificationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mentorhub_notification_failures_total",
			Help: "Total number of notification emails that failed after a committed mutation, labeled by action",
		}, []string{"action"}),
		EmailsSent: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mentorhub_emails_sent_total",
			Help: "Total number of emails handed to the mail provider, labeled by template",
		}, []string{"template"}),
	}
}

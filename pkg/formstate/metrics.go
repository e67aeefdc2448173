package formstate

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes recorded by Metrics.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
	OutcomeInvalid   = "invalid"
	OutcomeInFlight  = "in_flight"
)

// MetricsConfig configures form metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "fieldkit").
	Namespace string

	// Subsystem is the metrics subsystem (default: "form").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for submit duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures form metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the submit duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "fieldkit",
		Subsystem: "form",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors shared by forms.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	submissions        *prometheus.CounterVec
	submitDuration     prometheus.Histogram
	validationFailures *prometheus.CounterVec
	shownErrors        *prometheus.CounterVec
}

// NewMetrics registers the form collectors. Registering twice against the
// same registry panics, so create one Metrics per registry and share it.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "submissions_total",
			Help:        "Total number of form submit attempts by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome"}),

		submitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "submit_duration_seconds",
			Help:        "Time spent in submit handlers in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		validationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "validation_failures_total",
			Help:        "Fields that blocked a submit attempt with a validation error",
			ConstLabels: config.ConstLabels,
		}, []string{"field"}),

		shownErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "errors_shown_total",
			Help:        "Validation messages rendered to the user by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),
	}
}

// ObserveSubmission counts a submit attempt.
func (m *Metrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

// ObserveSubmitDuration records how long a submit handler ran.
func (m *Metrics) ObserveSubmitDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.submitDuration.Observe(d.Seconds())
}

// ObserveValidationFailure counts a field that blocked a submit attempt.
func (m *Metrics) ObserveValidationFailure(field string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(field).Inc()
}

// ObserveShownError counts a rendered error message. kind is "validation"
// or "submit".
func (m *Metrics) ObserveShownError(kind string) {
	if m == nil {
		return
	}
	m.shownErrors.WithLabelValues(kind).Inc()
}

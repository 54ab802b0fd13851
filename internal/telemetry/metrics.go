package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	TransitionsTotal   *prometheus.CounterVec
	FreightCalculated  *prometheus.CounterVec
	JobRunsTotal       *prometheus.CounterVec
	EventsPublishTotal *prometheus.CounterVec
}

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logistics_http_requests_total",
				Help: "Total number of HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "code"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "logistics_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds by method and route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		TransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logistics_transitions_total",
				Help: "Lifecycle transitions by aggregate, action and outcome",
			},
			[]string{"aggregate", "action", "outcome"},
		),
		FreightCalculated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logistics_freight_calculations_total",
				Help: "Freight charge calculations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		JobRunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logistics_job_runs_total",
				Help: "Background job runs by job and outcome",
			},
			[]string{"job", "outcome"},
		),
		EventsPublishTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logistics_domain_events_published_total",
				Help: "Domain events handed to the publisher by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// RecordRequest records one served HTTP request.
func (m *Metrics) RecordRequest(method, route, code string, seconds float64) {
	m.RequestsTotal.WithLabelValues(method, route, code).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) RecordTransition(aggregate, action string, err error) {
	m.TransitionsTotal.WithLabelValues(aggregate, action, outcome(err)).Inc()
}

func (m *Metrics) RecordFreightCalculation(operation string, err error) {
	m.FreightCalculated.WithLabelValues(operation, outcome(err)).Inc()
}

func (m *Metrics) RecordJobRun(job string, err error) {
	m.JobRunsTotal.WithLabelValues(job, outcome(err)).Inc()
}

func (m *Metrics) RecordPublish(count int, err error) {
	m.EventsPublishTotal.WithLabelValues(outcome(err)).Add(float64(count))
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}

// Package metrics exposes Prometheus instrumentation for InvoiceForge.
package metrics

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/invoiceforge/internal/validation"
)

const namespace = "invoiceforge"

// Validation outcomes used as the "result" label.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
)

// itemIndex collapses "items[12].price" to "items[].price" so the field
// label stays bounded.
var itemIndex = regexp.MustCompile(`\[\d+\]`)

// Metrics holds every collector and the registry they are registered on.
type Metrics struct {
	registry *prometheus.Registry

	RPCRequests  *prometheus.CounterVec
	RPCDuration  *prometheus.HistogramVec
	Validations  *prometheus.CounterVec
	FieldErrors  *prometheus.CounterVec
	DraftsActive prometheus.Gauge
}

// New creates the collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and Connect status code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"procedure"}),
		Validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Invoice validations by result.",
		}, []string{"result"}),
		FieldErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "field_errors_total",
			Help:      "Rejected fields, with item indices collapsed.",
		}, []string{"field"}),
		DraftsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "drafts_active",
			Help:      "Draft sessions currently held in memory.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RPCRequests,
		m.RPCDuration,
		m.Validations,
		m.FieldErrors,
		m.DraftsActive,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveValidation records the outcome of one validation. err is the
// error returned by validation.Validate or validation.ValidateLines.
func (m *Metrics) ObserveValidation(err error) {
	var verr *validation.ValidationError
	if !errors.As(err, &verr) {
		m.Validations.WithLabelValues(ResultValid).Inc()
		return
	}
	m.Validations.WithLabelValues(ResultInvalid).Inc()
	for _, f := range verr.Fields {
		m.FieldErrors.WithLabelValues(FieldLabel(f.Path)).Inc()
	}
}

// SetDrafts sets the active draft gauge.
func (m *Metrics) SetDrafts(n int) {
	m.DraftsActive.Set(float64(n))
}

// FieldLabel normalizes a validation path for use as a label value.
func FieldLabel(path string) string {
	return itemIndex.ReplaceAllString(path, "[]")
}

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/km-arc/go-curp/curp"
)

const (
	// Label names
	LabelResult = "result"
	LabelField  = "field"
	LabelKind   = "kind"
	LabelRoute  = "route"
	LabelMethod = "method"
	LabelStatus = "status"

	// Result values
	ResultValid   = "valid"
	ResultInvalid = "invalid"

	// FieldStructure labels violations that are not tied to a field.
	FieldStructure = "structure"

	// RouteUnmatched labels requests no route pattern matched.
	RouteUnmatched = "unmatched"
)

// Metrics holds the Prometheus collectors for the analyzer and its HTTP
// surface. A nil *Metrics records nothing.
type Metrics struct {
	AnalysesTotal   *prometheus.CounterVec
	FieldViolations *prometheus.CounterVec
	CacheHits       prometheus.Counter
	RequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New creates the collectors and registers them on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AnalysesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "curp_analyses_total",
				Help: "Total number of CURP analyses by outcome",
			},
			[]string{LabelResult},
		),

		FieldViolations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "curp_field_violations_total",
				Help: "Rule violations reported per CURP field and violation kind",
			},
			[]string{LabelField, LabelKind},
		),

		CacheHits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "curp_cache_hits_total",
				Help: "Analyses served from the memo cache",
			},
		),

		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency by route pattern",
				Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{LabelRoute, LabelMethod, LabelStatus},
		),

		registry: reg,
	}
}

// RecordAnalysis counts one analysis and each of its violations.
func (m *Metrics) RecordAnalysis(res curp.Result) {
	if m == nil {
		return
	}
	if res.IsValid() {
		m.AnalysesTotal.WithLabelValues(ResultValid).Inc()
		return
	}
	m.AnalysesTotal.WithLabelValues(ResultInvalid).Inc()
	for _, v := range res.Violations {
		field := string(v.Field)
		if field == "" {
			field = FieldStructure
		}
		m.FieldViolations.WithLabelValues(field, v.Kind.String()).Inc()
	}
}

// RecordCacheHit counts one memoized analysis.
func (m *Metrics) RecordCacheHit() {
	if m == nil {
		return
	}
	m.CacheHits.Inc()
}

// Instrument observes request latency labelled by the matched chi route
// pattern, so /api/v1/analyze/{curp} is one series however many CURPs hit it.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := RouteUnmatched
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.RequestDuration.
			WithLabelValues(route, r.Method, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Seitaro-Yuki/peer-1on1/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Intended for services that embed the pairing engine and generate periods
// on a schedule; the one-shot CLI uses the nop collector instead.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	attempts prometheus.Counter
	rejected prometheus.Counter
	penalty  prometheus.Gauge
	skipped  prometheus.Gauge
	duration prometheus.Histogram
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "peer1on1" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "peer1on1"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.attempts = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "pairing",
			Name:      "attempts_total",
			Help:      "Total candidate sets examined while generating periods.",
		})

		p.rejected = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "pairing",
			Name:      "rejected_candidates_total",
			Help:      "Total candidate sets discarded for containing a forbidden pair.",
		})

		p.penalty = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "pairing",
			Name:      "last_penalty",
			Help:      "Total repetition penalty of the most recently chosen candidate set.",
		})

		p.skipped = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "pairing",
			Name:      "skipped_members",
			Help:      "Members left unpaired in the most recently generated period.",
		})

		p.duration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "pairing",
			Name:      "generate_duration_seconds",
			Help:      "Wall time of one period generation in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. ~4s
		})

		p.reg.MustRegister(p.attempts)
		p.reg.MustRegister(p.rejected)
		p.reg.MustRegister(p.penalty)
		p.reg.MustRegister(p.skipped)
		p.reg.MustRegister(p.duration)
	})
}

// RecordAttempts adds to the attempts counter.
func (p *PrometheusCollector) RecordAttempts(count int) {
	p.ensureRegistered()
	p.attempts.Add(float64(count))
}

// RecordRejected adds to the rejected candidates counter.
func (p *PrometheusCollector) RecordRejected(count int) {
	p.ensureRegistered()
	p.rejected.Add(float64(count))
}

// RecordPenalty sets the last chosen penalty gauge.
func (p *PrometheusCollector) RecordPenalty(total int) {
	p.ensureRegistered()
	p.penalty.Set(float64(total))
}

// RecordSkipped sets the skipped members gauge.
func (p *PrometheusCollector) RecordSkipped(count int) {
	p.ensureRegistered()
	p.skipped.Set(float64(count))
}

// ObserveGenerateDuration observes one generation's wall time.
func (p *PrometheusCollector) ObserveGenerateDuration(seconds float64) {
	p.ensureRegistered()
	p.duration.Observe(seconds)
}

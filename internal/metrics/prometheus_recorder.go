package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once            sync.Once
	resolveDuration *prom.HistogramVec
	resolveResults  *prom.CounterVec
	batchDuration   prom.Histogram
	batchOutcome    *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.resolveDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "gitcreds",
			Name:      "resolve_duration_seconds",
			Help:      "Duration of individual account resolutions",
			Buckets:   prom.DefBuckets,
		}, []string{"realm"})
		pr.resolveResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "gitcreds",
			Name:      "resolve_results_total",
			Help:      "Per-account resolution results by outcome",
		}, []string{"result"})
		pr.batchDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "gitcreds",
			Name:      "batch_duration_seconds",
			Help:      "Total batch resolution duration",
			Buckets:   prom.DefBuckets,
		})
		pr.batchOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "gitcreds",
			Name:      "batch_outcomes_total",
			Help:      "Batch outcomes by final status",
		}, []string{"outcome"})
		reg.MustRegister(pr.resolveDuration, pr.resolveResults, pr.batchDuration, pr.batchOutcome)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveResolveDuration(realm string, d time.Duration) {
	if p == nil || p.resolveDuration == nil {
		return
	}
	p.resolveDuration.WithLabelValues(realm).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncResolveResult(result ResultLabel) {
	if p == nil || p.resolveResults == nil {
		return
	}
	p.resolveResults.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveBatchDuration(d time.Duration) {
	if p == nil || p.batchDuration == nil {
		return
	}
	p.batchDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBatchOutcome(outcome string) {
	if p == nil || p.batchOutcome == nil {
		return
	}
	p.batchOutcome.WithLabelValues(outcome).Inc()
}

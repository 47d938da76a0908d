package metrics

import "time"

// ResultLabel enumerates per-account resolution outcomes for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultSkipped ResultLabel = "skipped"
	ResultFatal   ResultLabel = "fatal"
)

// Recorder defines observability hooks for credential resolution.
// Implementations may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	ObserveResolveDuration(realm string, d time.Duration)
	IncResolveResult(result ResultLabel)
	ObserveBatchDuration(d time.Duration)
	IncBatchOutcome(outcome string) // outcome: success|fatal
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveResolveDuration(string, time.Duration) {}
func (NoopRecorder) IncResolveResult(ResultLabel)                 {}
func (NoopRecorder) ObserveBatchDuration(time.Duration)           {}
func (NoopRecorder) IncBatchOutcome(string)                       {}

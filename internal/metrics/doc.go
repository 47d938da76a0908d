// Package metrics provides observability hooks for credential resolution.
//
// It implements the Null Object pattern: components receive a Recorder
// through dependency injection and default to NoopRecorder, so metrics
// collection needs no nil checks and costs nothing unless a real
// implementation is injected. The CLI keeps the noop default; embedding
// services can swap in NewPrometheusRecorder with their own registry.
package metrics

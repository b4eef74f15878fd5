// Package metrics exposes observability hooks for content resolution.
package metrics

import "time"

// Outcome enumerates resolution results for counters.
type Outcome string

const (
	OutcomeFound    Outcome = "found"
	OutcomeFallback Outcome = "fallback"
	OutcomeMissing  Outcome = "missing"
	OutcomeError    Outcome = "error"
)

// Recorder defines the hooks the content service reports through.
// Implementations must be safe for concurrent use.
type Recorder interface {
	ObserveResolution(kind string, outcome Outcome)
	ObserveListing(kind string, count int, d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveResolution(string, Outcome)         {}
func (NoopRecorder) ObserveListing(string, int, time.Duration) {}

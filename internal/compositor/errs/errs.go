// Package errs defines the compositor's structured error kinds (spec.md
// §7). Only InvariantViolation is ever returned as an error from the
// public API — NoData, DegenerateGeometry, and SeekDetected are recoverable
// conditions the core degrades through silently, tagged here only so
// callers that log the degradation can name what happened.
package errs

import "fmt"

// Kind names a recoverable condition a component handles by falling back
// to a safe default. Never surfaced as an error. No package in this module
// logs or returns these kinds; the fallbacks themselves are silent.
type Kind string

const (
	KindNoData            Kind = "no_data"
	KindDegenerateGeometry Kind = "degenerate_geometry"
	KindSeekDetected       Kind = "seek_detected"
)

// InvariantViolation is returned when the caller has handed the core data
// that breaks an invariant spec.md §3 states must always hold (negative
// durations, overlapping clips, sourceIn > sourceOut). This is a
// programmer error, not a data gap, so it fails loudly instead of
// degrading (§7).
type InvariantViolation struct {
	Invariant string // which invariant was violated
	Detail    string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation (%s): %s", e.Invariant, e.Detail)
}

// NewInvariantViolation constructs an InvariantViolation error.
func NewInvariantViolation(invariant, detail string) error {
	return &InvariantViolation{Invariant: invariant, Detail: detail}
}

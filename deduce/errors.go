package deduce

import (
	"errors"
	"fmt"
)

// ErrDeduction is the sentinel every *DeductionError matches via errors.Is.
var ErrDeduction = errors.New("deduce: deduction failed")

// Phase names one step of the deduction chain.
type Phase int

const (
	// PhaseClassify checks the record shape and identifies digits 1, 7, 4
	// and 8 by length.
	PhaseClassify Phase = iota
	// PhaseSegmentA derives segment a from 7 minus 1.
	PhaseSegmentA
	// PhaseNine identifies 9 and derives segments g and e.
	PhaseNine
	// PhaseZeroSix separates 0 from 6 and derives segments c, f and d.
	PhaseZeroSix
	// PhaseThree identifies 3 and derives segment b.
	PhaseThree
	// PhaseVerify checks the finished map covers all seven wires and
	// resolves the remaining digits 2 and 5 through it.
	PhaseVerify
)

var phaseNames = [...]string{
	PhaseClassify: "classify",
	PhaseSegmentA: "segment-a",
	PhaseNine:     "nine",
	PhaseZeroSix:  "zero-six",
	PhaseThree:    "three",
	PhaseVerify:   "verify",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// DeductionError reports a record the chain could not resolve.
//
// Candidates is the number of patterns that satisfied a predicate expected
// to match exactly one; it is -1 when the failure was of another kind.
// Err carries an underlying cause (e.g. a bijection conflict), if any.
type DeductionError struct {
	Phase      Phase
	Candidates int
	Reason     string
	Err        error
}

func (e *DeductionError) Error() string {
	msg := fmt.Sprintf("deduce: %s: %s", e.Phase, e.Reason)
	if e.Candidates >= 0 {
		msg += fmt.Sprintf(" (%d candidates, want 1)", e.Candidates)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports ErrDeduction so callers can match with errors.Is.
func (e *DeductionError) Is(target error) bool {
	return target == ErrDeduction
}

// Unwrap exposes the underlying cause, if any.
func (e *DeductionError) Unwrap() error {
	return e.Err
}

// ambiguous builds the error for a uniqueness predicate that matched n ≠ 1 patterns.
func ambiguous(phase Phase, n int, reason string) *DeductionError {
	return &DeductionError{Phase: phase, Candidates: n, Reason: reason}
}

// malformed builds the error for a structural violation.
func malformed(phase Phase, err error, format string, args ...any) *DeductionError {
	return &DeductionError{Phase: phase, Candidates: -1, Reason: fmt.Sprintf(format, args...), Err: err}
}

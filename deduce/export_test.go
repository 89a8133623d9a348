package deduce

import "github.com/katalvlaran/sevenseg/segment"

// Test bridge: exposes the private phases and their state to deduce_test so
// each phase can be driven with fixed inputs and checked against an
// expected partial map.

// State is the phase state as seen by tests.
type State = state

// NewState builds a phase input.
func NewState(ds Digits, m segment.Map, pending []segment.Pattern) State {
	return state{digits: ds, mapping: m, pending: pending}
}

// Mapping returns the state's map.
func (s state) Mapping() segment.Map { return s.mapping }

// Identified returns the state's digits.
func (s state) Identified() Digits { return s.digits }

// Pending returns the state's unidentified patterns.
func (s state) Pending() []segment.Pattern { return s.pending }

// With exposes Digits.with.
func (ds Digits) With(d int, p segment.Pattern) Digits { return ds.with(d, p) }

var (
	ExportedSegmentA = segmentA
	ExportedNine     = nine
	ExportedZeroSix  = zeroSix
	ExportedThree    = three
	ExportedVerify   = verify
)

package segment

import (
	"errors"
	"fmt"
)

// Sentinel errors for segment operations.
var (
	// ErrEmptyPattern indicates an empty pattern string.
	ErrEmptyPattern = errors.New("segment: pattern is empty")

	// ErrInvalidSymbol indicates a symbol outside the 'a'..'g' alphabet.
	ErrInvalidSymbol = errors.New("segment: symbol outside alphabet a-g")

	// ErrDuplicateSymbol indicates a symbol repeated within one pattern.
	ErrDuplicateSymbol = errors.New("segment: duplicate symbol in pattern")

	// ErrPatternLength indicates a pattern whose length is outside
	// MinPatternLen..MaxPatternLen.
	ErrPatternLength = errors.New("segment: pattern length out of range")

	// ErrWireAssigned indicates a wire already mapped to a different segment.
	ErrWireAssigned = errors.New("segment: wire already assigned")

	// ErrSegmentTaken indicates a segment already claimed by a different wire.
	ErrSegmentTaken = errors.New("segment: segment already taken")

	// ErrUnmappedWire indicates a wire the map does not cover.
	ErrUnmappedWire = errors.New("segment: wire not mapped")

	// ErrUnknownPattern indicates a normalized set with no catalog entry.
	ErrUnknownPattern = errors.New("segment: pattern not in digit catalog")
)

// UnknownPatternError is returned by Match when a pattern cannot be
// resolved to a digit. Pattern is the input; Normalized is its image
// under the map (empty when a wire was unmapped).
type UnknownPatternError struct {
	Pattern    Pattern
	Normalized Set
	Err        error // ErrUnmappedWire-wrapped cause, or nil
}

func (e *UnknownPatternError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("segment: cannot normalize pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("segment: pattern %q normalizes to %q, which is not a digit", e.Pattern, e.Normalized)
}

// Is reports ErrUnknownPattern so callers can match with errors.Is.
func (e *UnknownPatternError) Is(target error) bool {
	return target == ErrUnknownPattern
}

// Unwrap exposes the normalization cause, if any.
func (e *UnknownPatternError) Unwrap() error {
	return e.Err
}

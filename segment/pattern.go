package segment

import "fmt"

// ParsePattern reads a pattern written as distinct symbols from 'a'..'g'.
// Symbol order is irrelevant: "ab" and "ba" parse to the same Pattern.
//
// Errors (in check order): ErrEmptyPattern, ErrInvalidSymbol,
// ErrDuplicateSymbol, ErrPatternLength. All are wrapped with the offending
// input so callers can still match them with errors.Is.
func ParsePattern(s string) (Pattern, error) {
	if s == "" {
		return 0, ErrEmptyPattern
	}

	var p Pattern
	for i, r := range s {
		w, ok := WireOf(r)
		if !ok {
			return 0, fmt.Errorf("%w: %q at offset %d in %q", ErrInvalidSymbol, r, i, s)
		}
		if p.Has(w) {
			return 0, fmt.Errorf("%w: %q in %q", ErrDuplicateSymbol, r, s)
		}
		p |= 1 << w
	}

	if n := p.Len(); n < MinPatternLen || n > MaxPatternLen {
		return 0, fmt.Errorf("%w: %q has %d symbols, want %d..%d", ErrPatternLength, s, n, MinPatternLen, MaxPatternLen)
	}
	return p, nil
}

// MustPattern is like ParsePattern but panics on error.
// Intended for fixed literals in tests and examples.
func MustPattern(s string) Pattern {
	p, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}
	return p
}

// AllWires is the pattern lighting every wire (the digit 8 shape).
const AllWires Pattern = full

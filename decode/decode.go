package decode

import (
	"github.com/katalvlaran/sevenseg/deduce"
	"github.com/katalvlaran/sevenseg/segment"
)

// DecodeDigits deduces r's wiring and resolves each output to a digit, in
// the order the outputs appear.
//
// Errors: *deduce.DeductionError if the signals are malformed or ambiguous,
// *segment.UnknownPatternError if an output does not resolve to a digit.
// The map is local to the call and discarded on return.
func DecodeDigits(r Record) ([OutputCount]int, error) {
	var digits [OutputCount]int

	m, err := deduce.Deduce(r.Signals[:])
	if err != nil {
		return digits, err
	}
	for i, p := range r.Outputs {
		d, err := segment.Match(p, m)
		if err != nil {
			return [OutputCount]int{}, err
		}
		digits[i] = d
	}
	return digits, nil
}

// Decode returns r's outputs read as a decimal number, most significant
// digit first. The result lies in [0, 9999].
func Decode(r Record) (int, error) {
	digits, err := DecodeDigits(r)
	if err != nil {
		return 0, err
	}
	v := 0
	for _, d := range digits {
		v = v*10 + d
	}
	return v, nil
}

// CountUnique returns how many of r's outputs have 2, 3, 4 or 7 wires,
// i.e. a digit fixed by length alone. The result lies in [0, 4].
func CountUnique(r Record) int {
	n := 0
	for _, p := range r.Outputs {
		if _, ok := segment.UniqueLength(p.Len()); ok {
			n++
		}
	}
	return n
}

// CountUniqueAll sums CountUnique over recs.
func CountUniqueAll(recs []Record) int {
	n := 0
	for _, r := range recs {
		n += CountUnique(r)
	}
	return n
}

package deduce

import (
	"fmt"

	"github.com/katalvlaran/sevenseg/segment"
)

// uniqueLengths lists, in check order, the lengths that decide a digit on
// their own.
var uniqueLengths = [...]int{2, 3, 4, 7}

// Classify identifies the digits whose pattern length alone determines them
// (2→1, 3→7, 4→4, 7→8) and returns the remaining signals, in input order,
// for the deduction chain.
//
// Checks (in order), all failing with *DeductionError at PhaseClassify:
//  1. every pattern has 2..7 wires;
//  2. each unique length occurs exactly once (Candidates = occurrences);
//  3. no signal repeats;
//  4. there are exactly ten signals, three of length 5 and three of length 6.
func Classify(signals []segment.Pattern) (Digits, []segment.Pattern, error) {
	var ds Digits

	// 1) Lengths within range
	for i, p := range signals {
		if n := p.Len(); n < segment.MinPatternLen || n > segment.MaxPatternLen {
			return Digits{}, nil, malformed(PhaseClassify, segment.ErrPatternLength,
				"signal %d has %d wires", i, n)
		}
	}

	// 2) Exactly one pattern per unique length
	for _, n := range uniqueLengths {
		matches := ofLen(signals, n)
		d, _ := segment.UniqueLength(n)
		if len(matches) != 1 {
			return Digits{}, nil, ambiguous(PhaseClassify, len(matches),
				fmt.Sprintf("signal of length %d (digit %d)", n, d))
		}
		ds = ds.with(d, matches[0])
	}

	// 3) Distinct signals
	var seen [1 << segment.NumWires]bool
	for _, p := range signals {
		if seen[p] {
			return Digits{}, nil, malformed(PhaseClassify, nil, "signal %q repeats", p)
		}
		seen[p] = true
	}

	// 4) Overall shape
	if len(signals) != SignalCount {
		return Digits{}, nil, malformed(PhaseClassify, nil,
			"record has %d signals, want %d", len(signals), SignalCount)
	}
	for _, n := range [...]int{5, 6} {
		if got := len(ofLen(signals, n)); got != 3 {
			return Digits{}, nil, malformed(PhaseClassify, nil,
				"record has %d signals of length %d, want 3", got, n)
		}
	}

	deferred := make([]segment.Pattern, 0, len(signals)-len(uniqueLengths))
	for _, p := range signals {
		if _, ok := segment.UniqueLength(p.Len()); !ok {
			deferred = append(deferred, p)
		}
	}
	return ds, deferred, nil
}

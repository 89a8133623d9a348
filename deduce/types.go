package deduce

import (
	"strings"

	"github.com/katalvlaran/sevenseg/segment"
)

// SignalCount is the number of distinct signal patterns in a record.
const SignalCount = 10

// Digits records which signal pattern has been identified as which digit.
// It is a value type; with returns an extended copy.
type Digits struct {
	pat [10]segment.Pattern // zero Pattern = not yet identified
}

// Pattern returns the pattern identified as digit d and whether d is known.
func (ds Digits) Pattern(d int) (segment.Pattern, bool) {
	if d < 0 || d > 9 || ds.pat[d] == 0 {
		return 0, false
	}
	return ds.pat[d], true
}

// Known returns the number of identified digits.
func (ds Digits) Known() int {
	n := 0
	for _, p := range ds.pat {
		if p != 0 {
			n++
		}
	}
	return n
}

func (ds Digits) with(d int, p segment.Pattern) Digits {
	ds.pat[d] = p
	return ds
}

func (ds Digits) String() string {
	var sb strings.Builder
	for d, p := range ds.pat {
		if p == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('0' + byte(d))
		sb.WriteByte('=')
		sb.WriteString(p.String())
	}
	return sb.String()
}

// Result is everything the deduction chain establishes for one record.
type Result struct {
	Map    segment.Map // total bijection over all seven wires
	Digits Digits      // all ten digits identified
}

// state is what flows between phases. Phases receive it by value and return
// a new one; pending is replaced, never edited in place.
type state struct {
	digits  Digits
	mapping segment.Map
	pending []segment.Pattern // signals not yet identified
}

// ofLen returns the patterns of ps with exactly n wires, in input order.
func ofLen(ps []segment.Pattern, n int) []segment.Pattern {
	out := make([]segment.Pattern, 0, len(ps))
	for _, p := range ps {
		if p.Len() == n {
			out = append(out, p)
		}
	}
	return out
}

// without returns a fresh slice holding ps minus every occurrence of drop.
func without(ps []segment.Pattern, drop ...segment.Pattern) []segment.Pattern {
	out := make([]segment.Pattern, 0, len(ps))
next:
	for _, p := range ps {
		for _, d := range drop {
			if p == d {
				continue next
			}
		}
		out = append(out, p)
	}
	return out
}

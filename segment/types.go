package segment

import (
	"math/bits"
	"strings"
)

// NumWires is the size of both alphabets.
const NumWires = 7

// Pattern length bounds. A lit digit uses at least two segments (digit 1)
// and at most all seven (digit 8).
const (
	MinPatternLen = 2
	MaxPatternLen = NumWires
)

// full is the mask with all seven bits set.
const full = 1<<NumWires - 1

// Wire identifies one physical wire by index 0..6 (symbols 'a'..'g').
type Wire uint8

// Segment identifies one canonical display position by index 0..6 (labels 'a'..'g').
type Segment uint8

// Canonical segment labels.
const (
	A Segment = iota
	B
	C
	D
	E
	F
	G
)

// WireOf returns the wire named by symbol r and whether r is in the alphabet.
func WireOf(r rune) (Wire, bool) {
	if r < 'a' || r > 'g' {
		return 0, false
	}
	return Wire(r - 'a'), true
}

// Symbol returns the wire's alphabet character.
func (w Wire) Symbol() byte { return 'a' + byte(w) }

func (w Wire) String() string { return string(w.Symbol()) }

// Label returns the segment's canonical character.
func (s Segment) Label() byte { return 'a' + byte(s) }

func (s Segment) String() string { return string(s.Label()) }

// Pattern is an unordered set of wires stored as a bitmask: bit i is wire i.
// The zero Pattern is the empty set.
type Pattern uint8

// PatternOf builds a Pattern from the given wires.
func PatternOf(ws ...Wire) Pattern {
	var p Pattern
	for _, w := range ws {
		p |= 1 << w
	}
	return p
}

// Len returns the number of wires in p.
func (p Pattern) Len() int { return bits.OnesCount8(uint8(p)) }

// Has reports whether w is a member of p.
func (p Pattern) Has(w Wire) bool { return p&(1<<w) != 0 }

// Minus returns the wires of p that are not in q.
func (p Pattern) Minus(q Pattern) Pattern { return p &^ q }

// Union returns the wires in p or q.
func (p Pattern) Union(q Pattern) Pattern { return p | q }

// Intersect returns the wires in both p and q.
func (p Pattern) Intersect(q Pattern) Pattern { return p & q }

// Single returns the only wire of p. ok is false unless p has exactly one member.
func (p Pattern) Single() (Wire, bool) {
	if p.Len() != 1 {
		return 0, false
	}
	return Wire(bits.TrailingZeros8(uint8(p))), true
}

// Wires lists the members of p in ascending order.
func (p Pattern) Wires() []Wire {
	ws := make([]Wire, 0, p.Len())
	for w := Wire(0); w < NumWires; w++ {
		if p.Has(w) {
			ws = append(ws, w)
		}
	}
	return ws
}

// String renders p as its sorted symbols, e.g. "abdf".
func (p Pattern) String() string {
	var sb strings.Builder
	for _, w := range p.Wires() {
		sb.WriteByte(w.Symbol())
	}
	return sb.String()
}

// Set is an unordered set of canonical segments, bit i being segment i.
type Set uint8

// SetOf builds a Set from the given segments.
func SetOf(ss ...Segment) Set {
	var s Set
	for _, seg := range ss {
		s |= 1 << seg
	}
	return s
}

// Len returns the number of segments in s.
func (s Set) Len() int { return bits.OnesCount8(uint8(s)) }

// Has reports whether seg is a member of s.
func (s Set) Has(seg Segment) bool { return s&(1<<seg) != 0 }

// String renders s as its sorted labels, e.g. "acf".
func (s Set) String() string {
	var sb strings.Builder
	for seg := Segment(0); seg < NumWires; seg++ {
		if s.Has(seg) {
			sb.WriteByte(seg.Label())
		}
	}
	return sb.String()
}

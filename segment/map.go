package segment

import (
	"fmt"
	"strings"
)

// Map is a partial bijection from wires to canonical segments.
//
// The zero Map is empty and ready to use. Map is a comparable value:
// copying it copies the whole mapping, and two maps holding the same
// assignments are ==.
type Map struct {
	to    [NumWires]Segment
	wires Pattern // domain
	segs  Set     // image
}

// Assign returns a copy of m extended with w → s.
//
// Re-assigning an identical pair is a no-op. Assign fails with
// ErrWireAssigned if w already maps elsewhere, and with ErrSegmentTaken if
// another wire already maps to s. The receiver is never modified.
func (m Map) Assign(w Wire, s Segment) (Map, error) {
	if cur, ok := m.Lookup(w); ok {
		if cur == s {
			return m, nil
		}
		return m, fmt.Errorf("%w: %s→%s, cannot remap to %s", ErrWireAssigned, w, cur, s)
	}
	if m.segs.Has(s) {
		return m, fmt.Errorf("%w: %s is already the image of another wire, cannot map %s", ErrSegmentTaken, s, w)
	}
	m.to[w] = s
	m.wires |= 1 << w
	m.segs |= 1 << s
	return m, nil
}

// Lookup returns the segment w maps to and whether w is mapped.
func (m Map) Lookup(w Wire) (Segment, bool) {
	if !m.wires.Has(w) {
		return 0, false
	}
	return m.to[w], true
}

// Len returns the number of mapped wires.
func (m Map) Len() int { return m.wires.Len() }

// Domain returns the set of mapped wires.
func (m Map) Domain() Pattern { return m.wires }

// Image returns the set of segments some wire maps to.
func (m Map) Image() Set { return m.segs }

// Complete reports whether all seven wires are mapped.
func (m Map) Complete() bool { return m.wires == AllWires }

// Apply translates every wire of p into its segment.
// It fails with ErrUnmappedWire if p holds a wire outside the domain.
func (m Map) Apply(p Pattern) (Set, error) {
	if missing := p.Minus(m.wires); missing != 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnmappedWire, missing)
	}
	var out Set
	for _, w := range p.Wires() {
		out |= 1 << m.to[w]
	}
	return out, nil
}

// String renders the mapping in wire order, e.g. "a→c b→f d→a".
func (m Map) String() string {
	parts := make([]string, 0, m.Len())
	for _, w := range m.wires.Wires() {
		parts = append(parts, w.String()+"→"+m.to[w].String())
	}
	return strings.Join(parts, " ")
}

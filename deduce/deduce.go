package deduce

import (
	"github.com/katalvlaran/sevenseg/segment"
)

// chain is the deduction order. Each phase relies on digits and segments
// established by the ones before it.
var chain = [...]func(state) (state, error){
	segmentA, // PhaseSegmentA
	nine,     // PhaseNine
	zeroSix,  // PhaseZeroSix
	three,    // PhaseThree
	verify,   // PhaseVerify
}

// Deduce derives the wire→segment bijection from a record's ten signals.
//
// The returned map is total over all seven wires. On any failure the
// error is a *DeductionError and the map is the zero Map; no partial
// mapping escapes.
func Deduce(signals []segment.Pattern) (segment.Map, error) {
	r, err := Resolve(signals)
	if err != nil {
		return segment.Map{}, err
	}
	return r.Map, nil
}

// Resolve is Deduce that also reports which signal is which digit.
func Resolve(signals []segment.Pattern) (Result, error) {
	ds, deferred, err := Classify(signals)
	if err != nil {
		return Result{}, err
	}

	s := state{digits: ds, pending: deferred}
	for _, step := range chain {
		if s, err = step(s); err != nil {
			return Result{}, err
		}
	}
	return Result{Map: s.mapping, Digits: s.digits}, nil
}

// segmentA: 7 lights exactly one wire more than 1, and that wire is a.
func segmentA(s state) (state, error) {
	k, err := s.need(PhaseSegmentA, 1, 7)
	if err != nil {
		return s, err
	}
	one, seven := k[0], k[1]

	diff := seven.Minus(one)
	w, ok := diff.Single()
	if !ok {
		return s, malformed(PhaseSegmentA, nil, "7 minus 1 leaves %q, want one wire", diff)
	}
	return s.assign(PhaseSegmentA, w, segment.A)
}

// nine: of the length-6 patterns, only 9 covers 4 ∪ 7 with a single wire to
// spare. That spare wire is g; the one wire 9 lacks is e.
func nine(s state) (state, error) {
	k, err := s.need(PhaseNine, 4, 7, 8)
	if err != nil {
		return s, err
	}
	four, seven, eight := k[0], k[1], k[2]
	cover := four.Union(seven)

	var cands []segment.Pattern
	for _, p := range ofLen(s.pending, 6) {
		if p.Minus(cover).Len() == 1 {
			cands = append(cands, p)
		}
	}
	if len(cands) != 1 {
		return s, ambiguous(PhaseNine, len(cands), "length-6 pattern covering 4∪7 plus one wire")
	}
	p9 := cands[0]

	g, _ := p9.Minus(cover).Single()
	e, ok := eight.Minus(p9).Single()
	if !ok {
		return s, malformed(PhaseNine, nil, "8 minus 9 leaves %q, want one wire", eight.Minus(p9))
	}

	if s, err = s.assign(PhaseNine, g, segment.G); err != nil {
		return s, err
	}
	if s, err = s.assign(PhaseNine, e, segment.E); err != nil {
		return s, err
	}
	s.digits = s.digits.with(9, p9)
	s.pending = without(s.pending, p9)
	return s, nil
}

// zeroSix: each remaining length-6 pattern lacks one wire. If that wire
// belongs to 1 the pattern is 6 and the wire is c (the other wire of 1 is
// f); otherwise the pattern is 0 and the wire is d.
func zeroSix(s state) (state, error) {
	k, err := s.need(PhaseZeroSix, 1, 8)
	if err != nil {
		return s, err
	}
	one, eight := k[0], k[1]

	rest := ofLen(s.pending, 6)
	if len(rest) != 2 {
		return s, malformed(PhaseZeroSix, nil, "%d length-6 patterns left, want 2", len(rest))
	}

	var sixes, zeros []segment.Pattern
	for _, p := range rest {
		if eight.Minus(p).Intersect(one) != 0 {
			sixes = append(sixes, p)
		} else {
			zeros = append(zeros, p)
		}
	}
	if len(sixes) != 1 {
		return s, ambiguous(PhaseZeroSix, len(sixes), "length-6 pattern missing a wire of 1")
	}
	p6, p0 := sixes[0], zeros[0]

	c, _ := eight.Minus(p6).Single()
	f, ok := one.Minus(segment.PatternOf(c)).Single()
	if !ok {
		return s, malformed(PhaseZeroSix, nil, "1 minus c leaves %q, want one wire", one.Minus(segment.PatternOf(c)))
	}
	d, _ := eight.Minus(p0).Single()

	for _, a := range [...]struct {
		w   segment.Wire
		seg segment.Segment
	}{{c, segment.C}, {f, segment.F}, {d, segment.D}} {
		if s, err = s.assign(PhaseZeroSix, a.w, a.seg); err != nil {
			return s, err
		}
	}
	s.digits = s.digits.with(6, p6).with(0, p0)
	s.pending = without(s.pending, p6, p0)
	return s, nil
}

// three: of the length-5 patterns, only 3 lacks two wires that are both
// outside 1. Those two wires are b and e; e is already known, so the
// unassigned one is b. An already-assigned wire that is not e means the
// record contradicts itself.
func three(s state) (state, error) {
	k, err := s.need(PhaseThree, 1, 8)
	if err != nil {
		return s, err
	}
	one, eight := k[0], k[1]

	var cands []segment.Pattern
	for _, p := range ofLen(s.pending, 5) {
		if eight.Minus(p).Minus(one).Len() == 2 {
			cands = append(cands, p)
		}
	}
	if len(cands) != 1 {
		return s, ambiguous(PhaseThree, len(cands), "length-5 pattern whose complement avoids 1 in two wires")
	}
	p3 := cands[0]

	var unassigned []segment.Wire
	for _, w := range eight.Minus(p3).Minus(one).Wires() {
		seg, ok := s.mapping.Lookup(w)
		if !ok {
			unassigned = append(unassigned, w)
			continue
		}
		if seg != segment.E {
			return s, malformed(PhaseThree, nil, "wire %s missing from 3 maps to %s, want e", w, seg)
		}
	}
	if len(unassigned) != 1 {
		return s, malformed(PhaseThree, nil, "%d unassigned wires missing from 3, want 1", len(unassigned))
	}

	if s, err = s.assign(PhaseThree, unassigned[0], segment.B); err != nil {
		return s, err
	}
	s.digits = s.digits.with(3, p3)
	s.pending = without(s.pending, p3)
	return s, nil
}

// verify: the map must now be total, the two leftover length-5 patterns
// must resolve through it to 2 and 5, and every identified pattern must
// normalize to the digit it was identified as.
func verify(s state) (state, error) {
	if !s.mapping.Complete() {
		return s, malformed(PhaseVerify, nil, "map covers %d wires, want %d", s.mapping.Len(), segment.NumWires)
	}
	if len(s.pending) != 2 {
		return s, malformed(PhaseVerify, nil, "%d patterns left unidentified, want 2", len(s.pending))
	}

	ds := s.digits
	for _, p := range s.pending {
		d, err := segment.Match(p, s.mapping)
		if err != nil {
			// Reported as text: a DeductionError must not also match ErrUnknownPattern.
			return s, malformed(PhaseVerify, nil, "leftover pattern %q: %v", p, err)
		}
		if d != 2 && d != 5 {
			return s, malformed(PhaseVerify, nil, "leftover pattern %q resolves to %d, want 2 or 5", p, d)
		}
		if _, dup := ds.Pattern(d); dup {
			return s, malformed(PhaseVerify, nil, "digit %d resolved twice", d)
		}
		ds = ds.with(d, p)
	}

	for want := 0; want < SignalCount; want++ {
		p, _ := ds.Pattern(want)
		got, err := segment.Match(p, s.mapping)
		if err != nil {
			return s, malformed(PhaseVerify, nil, "digit %d pattern %q: %v", want, p, err)
		}
		if got != want {
			return s, malformed(PhaseVerify, nil, "digit %d pattern %q resolves to %d", want, p, got)
		}
	}
	s.digits = ds
	s.pending = nil
	return s, nil
}

// need returns the patterns of the given digits, failing if any is unknown.
func (s state) need(phase Phase, digits ...int) ([]segment.Pattern, error) {
	out := make([]segment.Pattern, len(digits))
	for i, d := range digits {
		p, ok := s.digits.Pattern(d)
		if !ok {
			return nil, malformed(phase, nil, "digit %d not identified yet", d)
		}
		out[i] = p
	}
	return out, nil
}

// assign extends the map, reporting bijection conflicts as deduction failures.
func (s state) assign(phase Phase, w segment.Wire, seg segment.Segment) (state, error) {
	m, err := s.mapping.Assign(w, seg)
	if err != nil {
		return s, malformed(phase, err, "assign %s→%s", w, seg)
	}
	s.mapping = m
	return s, nil
}

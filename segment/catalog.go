package segment

// catalog lists the canonical segments lit for each digit, indexed by digit.
var catalog = [10]Set{
	0: SetOf(A, B, C, E, F, G),
	1: SetOf(C, F),
	2: SetOf(A, C, D, E, G),
	3: SetOf(A, C, D, F, G),
	4: SetOf(B, C, D, F),
	5: SetOf(A, B, D, F, G),
	6: SetOf(A, B, D, E, F, G),
	7: SetOf(A, C, F),
	8: SetOf(A, B, C, D, E, F, G),
	9: SetOf(A, B, C, D, F, G),
}

// byShape is the reverse of catalog, indexed by the Set bitmask.
// Entries not in the catalog hold -1.
var byShape = func() [1 << NumWires]int8 {
	var t [1 << NumWires]int8
	for i := range t {
		t[i] = -1
	}
	for d, s := range catalog {
		t[s] = int8(d)
	}
	return t
}()

// Digit returns the digit whose canonical segments are exactly s.
func Digit(s Set) (int, bool) {
	d := byShape[s&full]
	if d < 0 || s&^full != 0 {
		return 0, false
	}
	return int(d), true
}

// Segments returns the canonical segments of digit d (0..9).
// It panics if d is out of range.
func Segments(d int) Set {
	return catalog[d]
}

// UniqueLength reports which digit a pattern of length n must be, when
// the length alone decides it: 2→1, 3→7, 4→4, 7→8.
func UniqueLength(n int) (int, bool) {
	switch n {
	case 2:
		return 1, true
	case 3:
		return 7, true
	case 4:
		return 4, true
	case 7:
		return 8, true
	}
	return 0, false
}

// Package segment models the two alphabets of a seven-segment display and
// the mapping between them.
//
// What:
//
//   - Wire names one of the seven physical wires (symbols 'a'..'g'). Wiring
//     is scrambled per record, so a wire symbol says nothing by itself.
//   - Segment names one of the seven canonical display positions:
//
//	     aaaa
//	    b    c
//	    b    c
//	     dddd
//	    e    f
//	    e    f
//	     gggg
//
//   - Pattern is the set of wires lit for one displayed digit; Set is the
//     equivalent set of canonical segments. Both are 7-bit masks, so set
//     algebra (Minus, Union, Intersect) is a single machine operation.
//   - Map is a partial bijection Wire → Segment. It is a value type: Assign
//     returns an extended copy and never mutates the receiver.
//   - Catalog is the fixed table Set → digit 0..9.
//   - Match normalizes a Pattern through a Map and looks it up in Catalog.
//
// Complexity:
//
//   - Every operation is O(1): patterns hold at most seven members.
//
// Errors:
//
//   - ErrEmptyPattern, ErrInvalidSymbol, ErrDuplicateSymbol, ErrPatternLength:
//     ParsePattern rejected its input.
//   - ErrWireAssigned, ErrSegmentTaken: Assign would break the bijection.
//   - ErrUnmappedWire: Apply met a wire the map does not cover.
//   - ErrUnknownPattern (via *UnknownPatternError): Match found no catalog
//     entry. With a correctly deduced Map this cannot happen for valid
//     input, so it signals a defect upstream rather than bad data.
package segment

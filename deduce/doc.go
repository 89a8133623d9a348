// Package deduce reconstructs the scrambled wire→segment mapping of one
// seven-segment display from its ten distinct signal patterns.
//
// Overview:
//
//   - Classify picks out the four digits whose pattern length alone decides
//     them (1, 7, 4, 8) and defers the rest.
//   - Deduce then runs a fixed chain of set-difference deductions. The order
//     is load-bearing: every phase consumes what the previous ones found.
//
//	phase       consumes            identifies   assigns
//	segment-a   1, 7                -            a
//	nine        4, 7, 8, len-6      9            g, e
//	zero-six    1, 8, len-6 rest    0, 6         c, f, d
//	three       1, 8, len-5         3            b
//	verify      map, len-5 rest     2, 5         (all seven present; all ten digits re-matched)
//
//   - Each phase is a pure function of an immutable state value. Pending
//     patterns are filtered into fresh slices; nothing a later phase reads is
//     modified in place.
//
// This is deliberately not a general constraint solver: the chain exploits
// the known topology of the display and nothing else.
//
// Complexity:
//
//   - O(1) per record: ten patterns, seven wires, five phases.
//
// Errors:
//
//   - *DeductionError (errors.Is ErrDeduction): the record is malformed or
//     ambiguous. Phase tells where the chain stopped; Candidates tells how
//     many patterns satisfied a predicate that must match exactly one.
//     No partial map is ever returned alongside an error.
//
// Concurrency:
//
//   - Deduce holds no shared state, so records may be processed from any
//     number of goroutines without coordination.
package deduce

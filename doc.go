// Package sevenseg decodes seven-segment displays whose wires have been
// scrambled: given the ten distinct patterns a display shows, it recovers
// which wire drives which segment and reads the display's four-digit output.
//
// What's inside:
//
//	segment/ — wire and segment alphabets, patterns as 7-bit sets, the
//	           wire→segment Map, the fixed digit catalog and Match
//	deduce/  — length classification (1, 7, 4, 8) and the ordered chain of
//	           set-difference deductions that rebuilds the Map
//	decode/  — record parsing, per-record decoding, the unique-length tally
//	           and parallel batch aggregation
//
// Canonical layout:
//
//	 aaaa
//	b    c
//	b    c
//	 dddd
//	e    f
//	e    f
//	 gggg
//
// Quick start:
//
//	r, _ := decode.ParseRecord("acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | cdfeb fcadb cdfeb cdbaf")
//	v, _ := decode.Decode(r) // 5353
//
// Everything is pure and in-memory; records are independent and may be
// decoded concurrently (decode.Aggregate does so with a bounded worker pool).
package sevenseg

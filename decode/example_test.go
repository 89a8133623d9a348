package decode_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/sevenseg/decode"
)

// ExampleDecode decodes the worked example's four outputs.
func ExampleDecode() {
	r, err := decode.ParseRecord("acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | cdfeb fcadb cdfeb cdbaf")
	if err != nil {
		fmt.Println(err)
		return
	}
	v, err := decode.Decode(r)
	fmt.Println(v, err)

	// Output:
	// 5353 <nil>
}

// ExampleAggregate sums a small batch, skipping the record that cannot be
// deduced.
//
// Scenario:
//
//   - Line 1 decodes to 5353.
//   - Line 2 has no length-2 signal, so deduction fails.
//   - Line 3 decodes to 1964; two of its outputs have length-decided digits.
func ExampleAggregate() {
	input := strings.Join([]string{
		"acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | cdfeb fcadb cdfeb cdbaf",
		"acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb abcde | cdfeb fcadb cdfeb cdbaf",
		"acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | ab cefabd cdfgeb eafb",
	}, "\n")
	recs, err := decode.ReadRecords(strings.NewReader(input))
	if err != nil {
		fmt.Println(err)
		return
	}

	sum, err := decode.Aggregate(context.Background(), recs, decode.WithPolicy(decode.SkipFailed))
	fmt.Println("sum:", sum.Sum, "unique:", sum.Unique, "decoded:", sum.Decoded, "err:", err)
	for _, f := range sum.Failures {
		fmt.Println(f)
	}

	// Output:
	// sum: 7317 unique: 2 decoded: 2 err: <nil>
	// decode: record 1: deduce: classify: signal of length 2 (digit 1) (0 candidates, want 1)
}

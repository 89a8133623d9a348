package deduce_test

import (
	"testing"

	"github.com/katalvlaran/sevenseg/deduce"
)

// BenchmarkDeduce measures one full deduction chain on the worked example.
// Complexity: O(1) per record.
func BenchmarkDeduce(b *testing.B) {
	signals := patterns(b, exampleSignals)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := deduce.Deduce(signals); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkClassify isolates the length classification step.
func BenchmarkClassify(b *testing.B) {
	signals := patterns(b, exampleSignals)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := deduce.Classify(signals); err != nil {
			b.Fatal(err)
		}
	}
}

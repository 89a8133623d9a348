package decode

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/sevenseg/segment"
)

// separator splits signals from outputs in the textual form.
const separator = "|"

// ParseRecord reads one record of the form
//
//	<10 patterns> | <4 patterns>
//
// with patterns separated by whitespace. Every error wraps
// ErrMalformedRecord; a bad pattern additionally wraps the segment error.
func ParseRecord(line string) (Record, error) {
	var r Record

	sig, out, ok := strings.Cut(line, separator)
	if !ok {
		return r, fmt.Errorf("%w: missing %q separator", ErrMalformedRecord, separator)
	}

	sigFields := strings.Fields(sig)
	if len(sigFields) != len(r.Signals) {
		return r, fmt.Errorf("%w: %d signal patterns, want %d", ErrMalformedRecord, len(sigFields), len(r.Signals))
	}
	outFields := strings.Fields(out)
	if len(outFields) != len(r.Outputs) {
		return r, fmt.Errorf("%w: %d output patterns, want %d", ErrMalformedRecord, len(outFields), len(r.Outputs))
	}

	for i, f := range sigFields {
		p, err := segment.ParsePattern(f)
		if err != nil {
			return Record{}, fmt.Errorf("%w: signal %d: %w", ErrMalformedRecord, i, err)
		}
		r.Signals[i] = p
	}
	for i, f := range outFields {
		p, err := segment.ParsePattern(f)
		if err != nil {
			return Record{}, fmt.Errorf("%w: output %d: %w", ErrMalformedRecord, i, err)
		}
		r.Outputs[i] = p
	}
	return r, nil
}

// ReadRecords parses one record per line from rd, skipping blank lines.
// Errors carry the 1-based line number.
func ReadRecords(rd io.Reader) ([]Record, error) {
	var recs []Record
	sc := bufio.NewScanner(rd)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		r, err := ParseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		recs = append(recs, r)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("decode: reading records: %w", err)
	}
	return recs, nil
}

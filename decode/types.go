package decode

import (
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/sevenseg/segment"
)

// OutputCount is the number of output patterns per record.
const OutputCount = 4

// Record is one display observation: ten distinct signals (one per digit,
// scrambled) and four outputs to decode.
type Record struct {
	Signals [10]segment.Pattern
	Outputs [OutputCount]segment.Pattern
}

func (r Record) String() string {
	var sb strings.Builder
	for _, p := range r.Signals {
		sb.WriteString(p.String())
		sb.WriteByte(' ')
	}
	sb.WriteByte('|')
	for _, p := range r.Outputs {
		sb.WriteByte(' ')
		sb.WriteString(p.String())
	}
	return sb.String()
}

// Summary is the outcome of Aggregate.
//
//   - Sum:      total of the decoded values of successful records.
//   - Unique:   outputs with a length-decided digit, over all records.
//   - Decoded:  number of records decoded successfully.
//   - Failures: failed records in index order (empty under FailFast on success).
type Summary struct {
	Sum      int
	Unique   int
	Decoded  int
	Failures []*RecordError
}

// Policy selects how Aggregate treats a record that fails to decode.
type Policy int

const (
	// FailFast stops at the first failure and returns it.
	FailFast Policy = iota
	// SkipFailed logs and records failures but reports success.
	SkipFailed
	// CollectFailed decodes everything and returns all failures combined.
	CollectFailed
)

var policyNames = [...]string{
	FailFast:      "fail-fast",
	SkipFailed:    "skip",
	CollectFailed: "collect",
}

func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return "policy(?)"
	}
	return policyNames[p]
}

// ParsePolicy maps a policy name ("fail-fast", "skip", "collect") to a Policy.
func ParsePolicy(name string) (Policy, error) {
	for p, n := range policyNames {
		if n == name {
			return Policy(p), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Options configures Aggregate.
type Options struct {
	Workers int
	Policy  Policy
	Logger  *zap.Logger
}

// Option represents a functional option for configuring Aggregate.
type Option func(*Options)

// WithWorkers bounds how many records are decoded concurrently.
// It panics if n < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithPolicy sets the failure policy.
// It panics if p is not one of FailFast, SkipFailed, CollectFailed.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		if p < 0 || int(p) >= len(policyNames) {
			panic(ErrUnknownPolicy.Error())
		}
		o.Policy = p
	}
}

// WithLogger sets the logger. A nil logger keeps the current one.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with:
//   - Workers: runtime.GOMAXPROCS(0)
//   - Policy:  FailFast
//   - Logger:  zap.NewNop()
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Policy:  FailFast,
		Logger:  zap.NewNop(),
	}
}

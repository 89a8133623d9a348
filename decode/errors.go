package decode

import (
	"errors"
	"fmt"
)

// Sentinel errors for decode operations.
var (
	// ErrMalformedRecord indicates record text that does not parse.
	ErrMalformedRecord = errors.New("decode: malformed record")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("decode: workers must be at least 1")

	// ErrUnknownPolicy indicates a failure policy name that is not recognized.
	ErrUnknownPolicy = errors.New("decode: unknown failure policy")
)

// RecordError ties a decoding failure to the record's position in its batch.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("decode: record %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying deduction or matching error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

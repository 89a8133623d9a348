// Package decode turns display records into numbers.
//
// What:
//
//   - Record holds ten signal patterns and four output patterns.
//   - ParseRecord / ReadRecords read the textual form
//     "<ten patterns> | <four patterns>", one record per line.
//   - Decode deduces a record's wiring once (package deduce) and matches
//     each output against the digit catalog (package segment), most
//     significant digit first, giving a value in [0, 9999].
//   - CountUnique tallies outputs whose length alone gives the digit
//     (2, 3, 4 or 7 wires). It needs no deduction and never fails.
//   - Aggregate decodes a batch in parallel and sums the results.
//
// Options:
//
//   - WithWorkers(n):  decode at most n records at once (default GOMAXPROCS).
//   - WithPolicy(p):   FailFast (default), SkipFailed or CollectFailed.
//   - WithLogger(l):   *zap.Logger for per-record and summary logs (default no-op).
//
// The same settings can be loaded from YAML with ParseConfig.
//
// Errors:
//
//   - ErrMalformedRecord: the text of a record could not be parsed.
//   - *RecordError: a record failed to decode. It unwraps to either a
//     *deduce.DeductionError or a *segment.UnknownPatternError, so the two
//     failure kinds stay distinguishable via errors.As.
//   - ErrBadWorkers, ErrUnknownPolicy: invalid configuration.
//
// Concurrency:
//
//   - Records are independent; Aggregate shares nothing between them but
//     the result slots, each written by exactly one goroutine. The summary
//     does not depend on the worker count or scheduling order.
package decode

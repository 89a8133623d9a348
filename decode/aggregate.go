package decode

import (
	"context"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Aggregate decodes every record of recs and sums the values.
//
// Records are decoded concurrently, at most Options.Workers at a time. Each
// goroutine writes only its own result slot, so the Summary is the same for
// any worker count. Summary.Unique counts length-decided outputs over all
// records, including those that fail to decode.
//
// Failure handling follows Options.Policy:
//
//   - FailFast:      the first *RecordError is returned with a zero Summary
//     and the remaining work is cancelled.
//   - SkipFailed:    failures are logged and listed in Summary.Failures; the
//     error is nil.
//   - CollectFailed: like SkipFailed, but the failures are also returned
//     combined into one error (see multierr.Errors).
//
// Cancelling ctx stops scheduling further records and returns ctx.Err().
func Aggregate(ctx context.Context, recs []Record, opts ...Option) (Summary, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger.With(zap.Int("records", len(recs)), zap.Stringer("policy", cfg.Policy))

	values := make([]int, len(recs))
	failed := make([]*RecordError, len(recs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range recs {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := Decode(recs[i])
			if err != nil {
				failed[i] = &RecordError{Index: i, Err: err}
				log.Warn("record failed", zap.Int("index", i), zap.Error(err))
				if cfg.Policy == FailFast {
					return failed[i]
				}
				return nil
			}
			values[i] = v
			log.Debug("record decoded", zap.Int("index", i), zap.Int("value", v))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	// errgroup only reports errors returned by workers; a cancellation that
	// stopped the loop before any worker saw it still has to surface.
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	sum := Summary{Unique: CountUniqueAll(recs)}
	var combined error
	for i, f := range failed {
		if f != nil {
			sum.Failures = append(sum.Failures, f)
			combined = multierr.Append(combined, f)
			continue
		}
		sum.Sum += values[i]
		sum.Decoded++
	}

	log.Info("batch decoded",
		zap.Int("decoded", sum.Decoded),
		zap.Int("failed", len(sum.Failures)),
		zap.Int("sum", sum.Sum),
		zap.Int("unique", sum.Unique))

	if cfg.Policy == CollectFailed {
		return sum, combined
	}
	return sum, nil
}

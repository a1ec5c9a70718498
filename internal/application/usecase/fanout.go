package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/iter"
)

// Outcome is the result of one keyed step of a best-effort fan-out.
type Outcome struct {
	Key string
	Err error
}

// Report holds fan-out outcomes in input order. A failed entry never stops
// its siblings.
type Report []Outcome

// Failed returns the failed outcomes.
func (r Report) Failed() Report {
	var failed Report
	for _, o := range r {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// OK reports whether every step succeeded.
func (r Report) OK() bool {
	return len(r.Failed()) == 0
}

// Err joins the failures, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, o := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", o.Key, o.Err))
	}
	return errors.Join(errs...)
}

// Keys lists the outcome keys.
func (r Report) Keys() []string {
	keys := make([]string, len(r))
	for i, o := range r {
		keys[i] = o.Key
	}
	return keys
}

// logFailures writes one debug line per failed step.
func (r Report) logFailures(log *zerolog.Logger, op string) {
	for _, o := range r.Failed() {
		log.Debug().Err(o.Err).Str("op", op).Str("key", o.Key).Msg("fan-out step failed")
	}
}

// fanOut runs fn for every item concurrently and collects every outcome.
// Panics are converted into failed outcomes.
func fanOut[T any](ctx context.Context, items []T, key func(T) string, fn func(context.Context, T) error) Report {
	return iter.Map(items, func(item *T) Outcome {
		return Outcome{Key: key(*item), Err: protect(ctx, *item, fn)}
	})
}

func protect[T any](ctx context.Context, item T, fn func(context.Context, T) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(ctx, item)
}

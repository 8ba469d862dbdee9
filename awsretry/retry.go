// Package awsretry wraps single remote calls with classification-driven
// retry. Throttling and transient failures back off exponentially;
// credential and permission failures surface immediately.
package awsretry

import (
	"context"
	"fmt"
	"time"
)

// Error is a failed operation after classification, carrying the label
// of the listing call that failed so report errors are traceable.
type Error struct {
	Op         string
	Class      Class
	Attempts   int
	Suggestion string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s after %d attempt(s): %v (%s)",
		e.Op, e.Class, e.Attempts, e.Err, e.Suggestion)
}

func (e *Error) Unwrap() error { return e.Err }

// Operation is a single remote call to be retried.
type Operation func(ctx context.Context) error

// Executor retries operations with pure exponential backoff, no jitter.
// The zero value is unusable; use New or DefaultExecutor.
type Executor struct {
	// MaxAttempts is the number of retries after the initial attempt.
	MaxAttempts int
	// BaseDelay is the sleep before the first retry; each further retry
	// doubles it.
	BaseDelay time.Duration
}

// New returns an executor with the given retry budget.
func New(maxAttempts int, baseDelay time.Duration) *Executor {
	return &Executor{MaxAttempts: maxAttempts, BaseDelay: baseDelay}
}

// DefaultExecutor matches the per-call budget used by every collector.
func DefaultExecutor() *Executor {
	return New(3, time.Second)
}

// Do invokes op immediately, then retries throttling and transient
// failures up to MaxAttempts times, sleeping BaseDelay*2^n between
// attempts. Credential and terminal errors propagate without retry.
func (e *Executor) Do(ctx context.Context, label string, op Operation) error {
	var lastErr error
	var lastClass Class

	for attempt := 0; ; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}

		lastErr = err
		lastClass = Classify(err)

		if lastClass == ClassCredential || lastClass == ClassTerminal {
			return &Error{
				Op:         label,
				Class:      lastClass,
				Attempts:   attempt + 1,
				Suggestion: suggestion(lastClass),
				Err:        err,
			}
		}

		if attempt >= e.MaxAttempts {
			break
		}

		delay := e.BaseDelay * (1 << attempt)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return &Error{
				Op:         label,
				Class:      lastClass,
				Attempts:   attempt + 1,
				Suggestion: suggestion(lastClass),
				Err:        ctx.Err(),
			}
		}
	}

	return &Error{
		Op:         label,
		Class:      lastClass,
		Attempts:   e.MaxAttempts + 1,
		Suggestion: suggestion(lastClass),
		Err:        lastErr,
	}
}

// DoValue runs fn under the executor's retry policy and returns its
// result. Collectors use this to wrap paginator pages and detail calls.
func DoValue[T any](ctx context.Context, e *Executor, label string, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := e.Do(ctx, label, func(ctx context.Context) error {
		var innerErr error
		out, innerErr = fn(ctx)
		return innerErr
	})
	return out, err
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package retry re-issues remote calls that fail with transient or eventually consistent errors.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// ErrNoAttempts is returned when Do is asked to make zero attempts.
var ErrNoAttempts = errors.New("retry: maximum attempts must be at least 1")

// Predicate reports whether a failure is safe to retry.
type Predicate func(err error) bool

// Do calls op until it succeeds, the failure is not retryable, or maxAttempts calls were made.
//
// op is called for every attempt so that each attempt issues a fresh request. Between attempts
// Do calls onRetry, if set, and waits for delay. When Do gives up it returns the last failure as is.
// A nil retryable predicate means that no failure is retried.
func Do[T any](ctx context.Context, op func(ctx context.Context) (T, error), delay time.Duration, maxAttempts int, retryable Predicate, onRetry func()) (T, error) {
	if maxAttempts < 1 {
		var zero T
		return zero, ErrNoAttempts
	}
	operation := func() (T, error) {
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		if retryable == nil || !retryable(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}
	v, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(delay)),
		backoff.WithMaxTries(uint(maxAttempts)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(error, time.Duration) {
			if onRetry != nil {
				onRetry()
			}
		}),
	)
	if perm, ok := err.(*backoff.PermanentError); ok {
		// Exhausting the last attempt returns the wrapped failure before it is unwrapped.
		err = perm.Err
	}
	return v, err
}

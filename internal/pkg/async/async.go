// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package async provides helpers to run a series of fallible operations one after another.
//
// None of the helpers run two operations at the same time: the operation for item k+1 is only
// generated once the operation for item k has settled. Remote APIs that reconcile routes and
// resources are sensitive to call ordering and rate limits, so callers rely on this.
package async

import (
	"context"
)

// Handle is an operation that settles exactly once with either a value or an error.
type Handle[R any] struct {
	done chan struct{}
	val  R
	err  error
}

// Go starts fn in a new goroutine and returns a handle to its result.
func Go[R any](ctx context.Context, fn func(ctx context.Context) (R, error)) *Handle[R] {
	h := &Handle[R]{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		h.val, h.err = fn(ctx)
	}()
	return h
}

// Resolved returns a handle that has already settled with v.
func Resolved[R any](v R) *Handle[R] {
	h := &Handle[R]{done: make(chan struct{}), val: v}
	close(h.done)
	return h
}

// Rejected returns a handle that has already settled with err.
func Rejected[R any](err error) *Handle[R] {
	h := &Handle[R]{done: make(chan struct{}), err: err}
	close(h.done)
	return h
}

// Done returns a channel that is closed once the operation settles.
func (h *Handle[R]) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the operation settles and returns its result.
func (h *Handle[R]) Wait() (R, error) {
	<-h.done
	return h.val, h.err
}

// Sequence calls fn for every item in order and collects the returned values.
// fn is only called for the next item after the previous call returned successfully.
// The first error stops the sequence and is returned as is.
func Sequence[T, R any](ctx context.Context, items []T, fn func(ctx context.Context, item T) (R, error)) ([]R, error) {
	out := make([]R, 0, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := fn(ctx, item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// SequenceHandles is like Sequence but collects the settled handles instead of their values.
// The handle generated for an item must settle before the generator is called for the next item.
func SequenceHandles[T, R any](ctx context.Context, items []T, fn func(ctx context.Context, item T) *Handle[R]) ([]*Handle[R], error) {
	out := make([]*Handle[R], 0, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		h := fn(ctx, item)
		if _, err := h.Wait(); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

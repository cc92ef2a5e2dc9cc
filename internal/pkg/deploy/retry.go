// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package deploy

import (
	"context"
	"fmt"

	"github.com/aws/lambdeploy/internal/pkg/retry"
)

// Error codes of AWS APIs that are safe to retry.
const (
	errCodeTooManyRequests  = "TooManyRequestsException"
	errCodeConflict         = "ConflictException"
	errCodeResourceConflict = "ResourceConflictException"
	errCodeInvalidParameter = "InvalidParameterValueException"
)

var (
	// routingRetryable matches API Gateway throttling and concurrent modifications.
	routingRetryable = retry.ErrorCode(errCodeTooManyRequests, errCodeConflict)
	// functionRetryable matches updates to a function that is still being updated.
	functionRetryable = retry.ErrorCode(errCodeResourceConflict, errCodeTooManyRequests)
	// roleRetryable matches a new or updated execution role that IAM has not propagated yet.
	roleRetryable = retry.Any(
		retry.ErrorMessage(errCodeInvalidParameter, "cannot be assumed by Lambda"),
		retry.ErrorMessage(errCodeInvalidParameter, "role defined for the function cannot be assumed"),
		functionRetryable,
	)
)

// call runs op through the retry engine of p, reporting retries to its logger.
func call[T any](ctx context.Context, p *Pipeline, name string, retryable retry.Predicate, op func(ctx context.Context) (T, error)) (T, error) {
	return retry.Do(ctx, op, p.retryDelay, p.maxAttempts, retryable, func() {
		p.log.LogAPICall(fmt.Sprintf("retry %s", name), nil)
	})
}

// exec is call for operations that only return an error.
func exec(ctx context.Context, p *Pipeline, name string, retryable retry.Predicate, op func(ctx context.Context) error) error {
	_, err := call(ctx, p, name, retryable, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

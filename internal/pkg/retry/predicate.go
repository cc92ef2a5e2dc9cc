// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package retry

import (
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go/aws/awserr"
)

// ErrorCode returns a predicate that matches AWS errors with any of the codes.
func ErrorCode(codes ...string) Predicate {
	return func(err error) bool {
		code, _, ok := awsError(err)
		if !ok {
			return false
		}
		for _, c := range codes {
			if c == code {
				return true
			}
		}
		return false
	}
}

// ErrorMessage returns a predicate that matches AWS errors with the code whose message contains fragment.
func ErrorMessage(code, fragment string) Predicate {
	return func(err error) bool {
		c, msg, ok := awsError(err)
		return ok && c == code && strings.Contains(msg, fragment)
	}
}

// Any returns a predicate that matches when at least one of preds matches.
func Any(preds ...Predicate) Predicate {
	return func(err error) bool {
		for _, p := range preds {
			if p != nil && p(err) {
				return true
			}
		}
		return false
	}
}

func awsError(err error) (code, message string, ok bool) {
	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return "", "", false
	}
	return aerr.Code(), aerr.Message(), true
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/lambdeploy/internal/pkg/term/color"
)

var (
	errOperationCancelled = errors.New("operation cancelled")
)

type errInvalidFlag struct {
	flag  string
	value interface{}
	rule  string
	param string
}

func (e *errInvalidFlag) Error() string {
	return fmt.Sprintf("invalid value %v for --%s: %s", e.value, e.flag, e.reason())
}

func (e *errInvalidFlag) reason() string {
	switch e.rule {
	case "required":
		return "a value is required"
	case "resourcename":
		return "must contain only letters, numbers, hyphens and underscores"
	case "aliasname":
		return "must contain only letters, numbers, hyphens and underscores, and cannot be a number"
	case "alphanum":
		return "must contain only letters and numbers"
	case "startswith":
		return fmt.Sprintf("must start with %q", e.param)
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.Join(strings.Fields(e.param), ", "))
	default:
		return fmt.Sprintf("fails the %s check", e.rule)
	}
}

type errInvalidTriggerRegion struct {
	region string
}

func (e *errInvalidTriggerRegion) Error() string {
	return fmt.Sprintf("function is in region %s, but CloudFront triggers must be in %s", e.region, edgeRegion)
}

// RecommendActions returns recommended actions to be taken after the error.
func (e *errInvalidTriggerRegion) RecommendActions() string {
	return fmt.Sprintf("Deploy a copy of the function to %s and point %s at it.",
		color.HighlightUserInput(edgeRegion), color.HighlightCode("lambda.region"))
}

type errNoCacheBehavior struct {
	distributionID string
	pathPattern    string
}

func (e *errNoCacheBehavior) Error() string {
	if e.pathPattern == "" {
		return fmt.Sprintf("distribution %s has no default cache behavior", e.distributionID)
	}
	return fmt.Sprintf("distribution %s has no cache behavior for path pattern %s", e.distributionID, e.pathPattern)
}

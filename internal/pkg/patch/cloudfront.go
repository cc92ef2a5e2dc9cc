// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package patch

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudfront"
)

// defaultPathPatterns select a distribution's default cache behavior.
var defaultPathPatterns = map[string]bool{
	"":  true,
	"*": true,
}

// CacheBehavior is either the default cache behavior of a distribution or one scoped to a path pattern.
type CacheBehavior struct {
	// PathPattern is empty for the default cache behavior.
	PathPattern string

	associations **cloudfront.LambdaFunctionAssociations
}

// LambdaFunctionAssociations returns the behavior's Lambda@Edge associations.
// An empty list is attached to the behavior if it has none so that patches are reflected in the distribution config.
func (b *CacheBehavior) LambdaFunctionAssociations() *cloudfront.LambdaFunctionAssociations {
	if *b.associations == nil {
		*b.associations = &cloudfront.LambdaFunctionAssociations{
			Quantity: aws.Int64(0),
		}
	}
	return *b.associations
}

// FindCacheBehavior returns the cache behavior of the distribution config that matches the path pattern.
// An empty or "*" pattern selects the default cache behavior. It returns nil if nothing matches.
func FindCacheBehavior(cfg *cloudfront.DistributionConfig, pathPattern string) *CacheBehavior {
	if cfg == nil {
		return nil
	}
	if defaultPathPatterns[pathPattern] {
		if cfg.DefaultCacheBehavior == nil {
			return nil
		}
		return &CacheBehavior{
			associations: &cfg.DefaultCacheBehavior.LambdaFunctionAssociations,
		}
	}
	if cfg.CacheBehaviors == nil {
		return nil
	}
	for _, b := range cfg.CacheBehaviors.Items {
		if b != nil && aws.StringValue(b.PathPattern) == pathPattern {
			return &CacheBehavior{
				PathPattern:  pathPattern,
				associations: &b.LambdaFunctionAssociations,
			}
		}
	}
	return nil
}

// PatchEventAssociations points every event type in eventTypes at targetARN.
// Existing associations for an event type are retargeted in place, the others are appended in the order of eventTypes.
// The list is modified in place and returned.
func PatchEventAssociations(list *cloudfront.LambdaFunctionAssociations, eventTypes []string, targetARN string) (*cloudfront.LambdaFunctionAssociations, error) {
	if list == nil {
		return nil, fmt.Errorf("%w: lambda function associations must not be nil", ErrInvalidArgument)
	}
	if len(eventTypes) == 0 {
		return nil, fmt.Errorf("%w: at least one event type is required", ErrInvalidArgument)
	}
	if targetARN == "" {
		return nil, fmt.Errorf("%w: lambda function ARN must not be empty", ErrInvalidArgument)
	}
	for _, eventType := range eventTypes {
		if existing := findAssociation(list.Items, eventType); existing != nil {
			existing.LambdaFunctionARN = aws.String(targetARN)
			continue
		}
		list.Items = append(list.Items, &cloudfront.LambdaFunctionAssociation{
			EventType:         aws.String(eventType),
			LambdaFunctionARN: aws.String(targetARN),
		})
	}
	list.Quantity = aws.Int64(int64(len(list.Items)))
	return list, nil
}

func findAssociation(items []*cloudfront.LambdaFunctionAssociation, eventType string) *cloudfront.LambdaFunctionAssociation {
	for _, item := range items {
		if item != nil && aws.StringValue(item.EventType) == eventType {
			return item
		}
	}
	return nil
}

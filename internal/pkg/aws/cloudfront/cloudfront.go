// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cloudfront provides a client to make API requests to Amazon CloudFront.
package cloudfront

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudfront"
)

const (
	// EdgeFunctionRegion is the only AWS region accepted by CloudFront for functions associated with a distribution.
	EdgeFunctionRegion = "us-east-1"
)

type api interface {
	GetDistributionConfig(input *cloudfront.GetDistributionConfigInput) (*cloudfront.GetDistributionConfigOutput, error)
	UpdateDistribution(input *cloudfront.UpdateDistributionInput) (*cloudfront.UpdateDistributionOutput, error)
}

// CloudFront wraps the AWS SDK's CloudFront client.
type CloudFront struct {
	client api
}

// New returns a CloudFront client configured against the input session.
func New(s *session.Session) *CloudFront {
	return &CloudFront{
		client: cloudfront.New(s),
	}
}

// DistributionConfig returns the configuration of a distribution and its ETag.
// The ETag must be passed back to UpdateDistributionConfig.
func (c *CloudFront) DistributionConfig(distributionID string) (*cloudfront.DistributionConfig, string, error) {
	out, err := c.client.GetDistributionConfig(&cloudfront.GetDistributionConfigInput{
		Id: aws.String(distributionID),
	})
	if err != nil {
		return nil, "", fmt.Errorf("get configuration of distribution %s: %w", distributionID, err)
	}
	return out.DistributionConfig, aws.StringValue(out.ETag), nil
}

// UpdateDistributionConfig replaces the configuration of a distribution, if it still matches the ETag.
func (c *CloudFront) UpdateDistributionConfig(distributionID, etag string, cfg *cloudfront.DistributionConfig) error {
	if _, err := c.client.UpdateDistribution(&cloudfront.UpdateDistributionInput{
		Id:                 aws.String(distributionID),
		IfMatch:            aws.String(etag),
		DistributionConfig: cfg,
	}); err != nil {
		return fmt.Errorf("update distribution %s: %w", distributionID, err)
	}
	return nil
}

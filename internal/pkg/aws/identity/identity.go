// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package identity wraps AWS Security Token Service (STS) API functionality.
package identity

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/arn"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/aws/aws-sdk-go/service/sts/stsiface"
)

// STS wraps the internal sts client.
type STS struct {
	client stsiface.STSAPI
}

// New returns a STS client configured with the input session.
func New(s *session.Session) *STS {
	return &STS{
		client: sts.New(s),
	}
}

// Caller holds information about a calling entity.
type Caller struct {
	ARN       string
	Account   string
	UserID    string
	Partition string
}

// Get returns the Caller associated with the client's session.
func (s *STS) Get() (Caller, error) {
	out, err := s.client.GetCallerIdentity(&sts.GetCallerIdentityInput{})
	if err != nil {
		return Caller{}, fmt.Errorf("get caller identity: %w", err)
	}
	callerARN := aws.StringValue(out.Arn)
	parsed, err := arn.Parse(callerARN)
	if err != nil {
		return Caller{}, fmt.Errorf("parse caller arn %s: %w", callerARN, err)
	}
	return Caller{
		ARN:       callerARN,
		Account:   aws.StringValue(out.Account),
		UserID:    aws.StringValue(out.UserId),
		Partition: parsed.Partition,
	}, nil
}

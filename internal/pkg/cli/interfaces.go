// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"

	"github.com/aws/aws-sdk-go/service/cloudfront"
	"github.com/aws/lambdeploy/internal/pkg/aws/lambda"
	"github.com/aws/lambdeploy/internal/pkg/config"
	"github.com/aws/lambdeploy/internal/pkg/deploy"
	"github.com/aws/lambdeploy/internal/pkg/term/prompt"
)

type projectStore interface {
	Read() (*config.Project, error)
	Delete() error
	Path() string
}

type pipelineRunner interface {
	Run(ctx context.Context, in deploy.Input) (*deploy.State, error)
}

type functionDescriber interface {
	FunctionConfiguration(ctx context.Context, name string) (*lambda.Function, error)
}

type functionDeleter interface {
	DeleteFunction(ctx context.Context, name string) error
}

type restAPIDeleter interface {
	DeleteRestAPI(ctx context.Context, apiID string) error
}

type roleDeleter interface {
	DeleteRole(roleNameOrARN string) error
}

type trustPolicyUpdater interface {
	AddServiceToTrustPolicy(roleNameOrARN, service string) (bool, error)
}

type distributionConfigurer interface {
	DistributionConfig(distributionID string) (*cloudfront.DistributionConfig, string, error)
	UpdateDistributionConfig(distributionID, etag string, cfg *cloudfront.DistributionConfig) error
}

type prompter interface {
	Get(message, help string, validator prompt.ValidatorFunc) (string, error)
	MultiSelect(message, help string, options []string) ([]string, error)
	Confirm(message, help string, opts ...prompt.Option) (bool, error)
}

type progress interface {
	Start(label string)
	Stop(label string)
}

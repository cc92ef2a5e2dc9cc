// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	sdkcloudfront "github.com/aws/aws-sdk-go/service/cloudfront"
	"github.com/aws/lambdeploy/internal/pkg/aws/lambda"
	"github.com/aws/lambdeploy/internal/pkg/cli/mocks"
	"github.com/aws/lambdeploy/internal/pkg/config"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type cloudFrontTriggerMocks struct {
	store        *mocks.MockprojectStore
	prompt       *mocks.Mockprompter
	function     *mocks.MockfunctionDescriber
	role         *mocks.MocktrustPolicyUpdater
	distribution *mocks.MockdistributionConfigurer
}

func TestSetCloudFrontTriggerOpts_Validate(t *testing.T) {
	testCases := map[string]struct {
		inVars setCloudFrontTriggerVars

		wantedErr string
	}{
		"valid flags": {
			inVars: setCloudFrontTriggerVars{alias: "latest", distributionID: "E2QWRUHAPOMQZL", eventTypes: []string{"viewer-request"}},
		},
		"missing flags are asked for later": {
			inVars: setCloudFrontTriggerVars{alias: "latest"},
		},
		"numeric alias": {
			inVars:    setCloudFrontTriggerVars{alias: "1"},
			wantedErr: "invalid value 1 for --version: must contain only letters, numbers, hyphens and underscores, and cannot be a number",
		},
		"invalid distribution ID": {
			inVars:    setCloudFrontTriggerVars{alias: "latest", distributionID: "E2QW/"},
			wantedErr: "invalid value E2QW/ for --distribution-id: must contain only letters and numbers",
		},
		"unknown event type": {
			inVars:    setCloudFrontTriggerVars{alias: "latest", eventTypes: []string{"origin-request", "viewer-reply"}},
			wantedErr: "invalid value viewer-reply for --event-types: must be one of viewer-request, origin-request, origin-response, viewer-response",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			opts := &setCloudFrontTriggerOpts{setCloudFrontTriggerVars: tc.inVars}

			err := opts.Validate()

			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSetCloudFrontTriggerOpts_Ask(t *testing.T) {
	testCases := map[string]struct {
		inVars     setCloudFrontTriggerVars
		setupMocks func(m *mocks.Mockprompter)

		wantedDistribution string
		wantedEventTypes   []string
		wantedErr          string
	}{
		"does not prompt for flags that are set": {
			inVars:             setCloudFrontTriggerVars{distributionID: "E2QW", eventTypes: []string{"origin-response"}},
			setupMocks:         func(m *mocks.Mockprompter) {},
			wantedDistribution: "E2QW",
			wantedEventTypes:   []string{"origin-response"},
		},
		"prompts for missing flags": {
			setupMocks: func(m *mocks.Mockprompter) {
				m.EXPECT().Get(distributionPrompt, distributionPromptHelp, gomock.Any()).Return("E2QW", nil)
				m.EXPECT().MultiSelect(eventTypesPrompt, eventTypesPromptHelp, edgeEventTypes).Return([]string{"viewer-request", "viewer-response"}, nil)
			},
			wantedDistribution: "E2QW",
			wantedEventTypes:   []string{"viewer-request", "viewer-response"},
		},
		"wraps prompt errors": {
			setupMocks: func(m *mocks.Mockprompter) {
				m.EXPECT().Get(distributionPrompt, distributionPromptHelp, gomock.Any()).Return("", errors.New("some error"))
			},
			wantedErr: "get distribution ID: some error",
		},
		"wraps selection errors": {
			inVars: setCloudFrontTriggerVars{distributionID: "E2QW"},
			setupMocks: func(m *mocks.Mockprompter) {
				m.EXPECT().MultiSelect(eventTypesPrompt, eventTypesPromptHelp, edgeEventTypes).Return(nil, errors.New("some error"))
			},
			wantedErr: "select event types: some error",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			p := mocks.NewMockprompter(ctrl)
			tc.setupMocks(p)
			opts := &setCloudFrontTriggerOpts{
				setCloudFrontTriggerVars: tc.inVars,
				prompt:                   p,
			}

			// WHEN
			err := opts.Ask()

			// THEN
			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedDistribution, opts.distributionID)
			require.Equal(t, tc.wantedEventTypes, opts.eventTypes)
		})
	}
}

func TestSetCloudFrontTriggerOpts_Execute(t *testing.T) {
	const (
		functionRole = "arn:aws:iam::123456789012:role/hello-exec"
		oldARN       = "arn:aws:lambda:us-east-1:123456789012:function:hello:3"
		versionARN   = "arn:aws:lambda:us-east-1:123456789012:function:hello:7"
	)
	edgeProject := &config.Project{Lambda: config.Lambda{Name: "hello", Region: "us-east-1"}}
	distribution := func() *sdkcloudfront.DistributionConfig {
		return &sdkcloudfront.DistributionConfig{
			DefaultCacheBehavior: &sdkcloudfront.DefaultCacheBehavior{
				LambdaFunctionAssociations: &sdkcloudfront.LambdaFunctionAssociations{
					Quantity: aws.Int64(1),
					Items: []*sdkcloudfront.LambdaFunctionAssociation{
						{EventType: aws.String("viewer-request"), LambdaFunctionARN: aws.String(oldARN)},
					},
				},
			},
			CacheBehaviors: &sdkcloudfront.CacheBehaviors{
				Quantity: aws.Int64(1),
				Items: []*sdkcloudfront.CacheBehavior{
					{PathPattern: aws.String("/img/*")},
				},
			},
		}
	}
	expectFunction := func(m cloudFrontTriggerMocks) {
		m.function.EXPECT().FunctionConfiguration(gomock.Any(), "hello:prod").Return(&lambda.Function{
			Name:    "hello",
			ARN:     "arn:aws:lambda:us-east-1:123456789012:function:hello:prod",
			Version: "7",
			Role:    functionRole,
		}, nil)
	}
	invalidAssociation := awserr.New(errCodeInvalidLambdaAssociation, "The function execution role must be assumable with edgelambda.amazonaws.com", nil)

	testCases := map[string]struct {
		inVars     setCloudFrontTriggerVars
		setupMocks func(m cloudFrontTriggerMocks)

		wantedErr string
	}{
		"rejects functions outside of the edge region": {
			setupMocks: func(m cloudFrontTriggerMocks) {
				m.store.EXPECT().Read().Return(&config.Project{Lambda: config.Lambda{Name: "hello", Region: "eu-west-1"}}, nil)
			},
			wantedErr: "function is in region eu-west-1, but CloudFront triggers must be in us-east-1",
		},
		"retargets the default cache behavior once the role can be assumed": {
			inVars: setCloudFrontTriggerVars{alias: "prod", distributionID: "E2QW", eventTypes: []string{"viewer-request", "origin-response"}},
			setupMocks: func(m cloudFrontTriggerMocks) {
				m.store.EXPECT().Read().Return(edgeProject, nil)
				expectFunction(m)
				m.role.EXPECT().AddServiceToTrustPolicy(functionRole, "edgelambda.amazonaws.com").Return(true, nil)
				m.distribution.EXPECT().DistributionConfig("E2QW").Return(distribution(), "ETAG1", nil)
				gomock.InOrder(
					m.distribution.EXPECT().UpdateDistributionConfig("E2QW", "ETAG1", gomock.Any()).Return(invalidAssociation),
					m.distribution.EXPECT().UpdateDistributionConfig("E2QW", "ETAG1", gomock.Any()).
						DoAndReturn(func(_, _ string, cfg *sdkcloudfront.DistributionConfig) error {
							got := cfg.DefaultCacheBehavior.LambdaFunctionAssociations
							require.Equal(t, int64(2), aws.Int64Value(got.Quantity))
							require.Equal(t, versionARN, aws.StringValue(got.Items[0].LambdaFunctionARN))
							require.Equal(t, "origin-response", aws.StringValue(got.Items[1].EventType))
							require.Equal(t, versionARN, aws.StringValue(got.Items[1].LambdaFunctionARN))
							return nil
						}),
				)
			},
		},
		"uses the configured role and path pattern": {
			inVars: setCloudFrontTriggerVars{alias: "prod", distributionID: "E2QW", pathPattern: "/img/*", eventTypes: []string{"origin-request"}},
			setupMocks: func(m cloudFrontTriggerMocks) {
				m.store.EXPECT().Read().Return(&config.Project{
					Lambda: config.Lambda{Name: "hello", Region: "us-east-1", Role: "edge-role"},
				}, nil)
				expectFunction(m)
				m.role.EXPECT().AddServiceToTrustPolicy("edge-role", "edgelambda.amazonaws.com").Return(false, nil)
				m.distribution.EXPECT().DistributionConfig("E2QW").Return(distribution(), "ETAG1", nil)
				m.distribution.EXPECT().UpdateDistributionConfig("E2QW", "ETAG1", gomock.Any()).
					DoAndReturn(func(_, _ string, cfg *sdkcloudfront.DistributionConfig) error {
						got := cfg.CacheBehaviors.Items[0].LambdaFunctionAssociations
						require.Equal(t, int64(1), aws.Int64Value(got.Quantity))
						require.Equal(t, versionARN, aws.StringValue(got.Items[0].LambdaFunctionARN))
						require.Equal(t, oldARN, aws.StringValue(cfg.DefaultCacheBehavior.LambdaFunctionAssociations.Items[0].LambdaFunctionARN))
						return nil
					})
			},
		},
		"errors when no cache behavior matches": {
			inVars: setCloudFrontTriggerVars{alias: "prod", distributionID: "E2QW", pathPattern: "/api/*", eventTypes: []string{"origin-request"}},
			setupMocks: func(m cloudFrontTriggerMocks) {
				m.store.EXPECT().Read().Return(edgeProject, nil)
				expectFunction(m)
				m.role.EXPECT().AddServiceToTrustPolicy(functionRole, "edgelambda.amazonaws.com").Return(false, nil)
				m.distribution.EXPECT().DistributionConfig("E2QW").Return(distribution(), "ETAG1", nil)
			},
			wantedErr: "distribution E2QW has no cache behavior for path pattern /api/*",
		},
		"gives up after the last attempt": {
			inVars: setCloudFrontTriggerVars{alias: "prod", distributionID: "E2QW", eventTypes: []string{"viewer-request"}},
			setupMocks: func(m cloudFrontTriggerMocks) {
				m.store.EXPECT().Read().Return(edgeProject, nil)
				expectFunction(m)
				m.role.EXPECT().AddServiceToTrustPolicy(functionRole, "edgelambda.amazonaws.com").Return(false, nil)
				m.distribution.EXPECT().DistributionConfig("E2QW").Return(distribution(), "ETAG1", nil)
				m.distribution.EXPECT().UpdateDistributionConfig("E2QW", "ETAG1", gomock.Any()).Return(invalidAssociation).Times(3)
			},
			wantedErr: invalidAssociation.Error(),
		},
		"does not retry other errors": {
			inVars: setCloudFrontTriggerVars{alias: "prod", distributionID: "E2QW", eventTypes: []string{"viewer-request"}},
			setupMocks: func(m cloudFrontTriggerMocks) {
				m.store.EXPECT().Read().Return(edgeProject, nil)
				expectFunction(m)
				m.role.EXPECT().AddServiceToTrustPolicy(functionRole, "edgelambda.amazonaws.com").Return(false, nil)
				m.distribution.EXPECT().DistributionConfig("E2QW").Return(distribution(), "ETAG1", nil)
				m.distribution.EXPECT().UpdateDistributionConfig("E2QW", "ETAG1", gomock.Any()).Return(errors.New("some error"))
			},
			wantedErr: "some error",
		},
		"returns trust policy errors": {
			inVars: setCloudFrontTriggerVars{alias: "prod", distributionID: "E2QW", eventTypes: []string{"viewer-request"}},
			setupMocks: func(m cloudFrontTriggerMocks) {
				m.store.EXPECT().Read().Return(edgeProject, nil)
				expectFunction(m)
				m.role.EXPECT().AddServiceToTrustPolicy(functionRole, "edgelambda.amazonaws.com").Return(false, errors.New("some error"))
			},
			wantedErr: "some error",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := cloudFrontTriggerMocks{
				store:        mocks.NewMockprojectStore(ctrl),
				function:     mocks.NewMockfunctionDescriber(ctrl),
				role:         mocks.NewMocktrustPolicyUpdater(ctrl),
				distribution: mocks.NewMockdistributionConfigurer(ctrl),
			}
			tc.setupMocks(m)
			opts := &setCloudFrontTriggerOpts{
				setCloudFrontTriggerVars: tc.inVars,
				store:                    m.store,
				maxAttempts:              3,
			}
			opts.initClients = func(*config.Project) error {
				opts.function = m.function
				opts.role = m.role
				opts.distribution = m.distribution
				return nil
			}

			// WHEN
			err := opts.Execute()

			// THEN
			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestQualifiedARN(t *testing.T) {
	testCases := map[string]struct {
		inARN string

		wanted string
	}{
		"unqualified": {
			inARN:  "arn:aws:lambda:us-east-1:123456789012:function:hello",
			wanted: "arn:aws:lambda:us-east-1:123456789012:function:hello:7",
		},
		"qualified with an alias": {
			inARN:  "arn:aws:lambda:us-east-1:123456789012:function:hello:prod",
			wanted: "arn:aws:lambda:us-east-1:123456789012:function:hello:7",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.wanted, qualifiedARN(tc.inARN, "7"))
		})
	}
}

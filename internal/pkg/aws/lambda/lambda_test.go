// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package lambda

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/aws/lambdeploy/internal/pkg/aws/lambda/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var errNotFound = awserr.New(lambda.ErrCodeResourceNotFoundException, "not found", nil)

func TestLambda_FunctionConfiguration(t *testing.T) {
	testCases := map[string]struct {
		inClient func(m *mocks.Mockapi)

		wanted    *Function
		wantedErr error
	}{
		"converts the configuration": {
			inClient: func(m *mocks.Mockapi) {
				m.EXPECT().GetFunctionConfigurationWithContext(gomock.Any(), &lambda.GetFunctionConfigurationInput{
					FunctionName: aws.String("hello"),
				}).Return(&lambda.FunctionConfiguration{
					FunctionName: aws.String("hello"),
					FunctionArn:  aws.String("arn:aws:lambda:us-east-1:123456789012:function:hello"),
					Version:      aws.String("$LATEST"),
					Role:         aws.String("arn:aws:iam::123456789012:role/hello-executor"),
					Environment: &lambda.EnvironmentResponse{
						Variables: aws.StringMap(map[string]string{"STAGE": "dev"}),
					},
				}, nil)
			},
			wanted: &Function{
				Name:        "hello",
				ARN:         "arn:aws:lambda:us-east-1:123456789012:function:hello",
				Version:     "$LATEST",
				Role:        "arn:aws:iam::123456789012:role/hello-executor",
				Environment: map[string]string{"STAGE": "dev"},
			},
		},
		"wraps errors": {
			inClient: func(m *mocks.Mockapi) {
				m.EXPECT().GetFunctionConfigurationWithContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))
			},
			wantedErr: errors.New("get configuration of function hello: some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			m := mocks.NewMockapi(ctrl)
			tc.inClient(m)
			client := &Lambda{client: m}

			// WHEN
			got, err := client.FunctionConfiguration(context.Background(), "hello")

			// THEN
			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wanted, got)
		})
	}
}

func TestLambda_UpdateFunctionCode(t *testing.T) {
	testCases := map[string]struct {
		inCode   Code
		inClient func(m *mocks.Mockapi)

		wantedVersion string
		wantedErr     error
	}{
		"uploads the archive inline and publishes a version": {
			inCode: Code{ZipFile: []byte("PK")},
			inClient: func(m *mocks.Mockapi) {
				m.EXPECT().UpdateFunctionCodeWithContext(gomock.Any(), &lambda.UpdateFunctionCodeInput{
					FunctionName: aws.String("hello"),
					Publish:      aws.Bool(true),
					ZipFile:      []byte("PK"),
				}).Return(&lambda.FunctionConfiguration{Version: aws.String("7")}, nil)
			},
			wantedVersion: "7",
		},
		"points at the uploaded object": {
			inCode: Code{S3Bucket: "deployments", S3Key: "hello-1234.zip"},
			inClient: func(m *mocks.Mockapi) {
				m.EXPECT().UpdateFunctionCodeWithContext(gomock.Any(), &lambda.UpdateFunctionCodeInput{
					FunctionName: aws.String("hello"),
					Publish:      aws.Bool(true),
					S3Bucket:     aws.String("deployments"),
					S3Key:        aws.String("hello-1234.zip"),
				}).Return(&lambda.FunctionConfiguration{Version: aws.String("8")}, nil)
			},
			wantedVersion: "8",
		},
		"keeps the error code for retries": {
			inCode: Code{ZipFile: []byte("PK")},
			inClient: func(m *mocks.Mockapi) {
				m.EXPECT().UpdateFunctionCodeWithContext(gomock.Any(), gomock.Any()).
					Return(nil, awserr.New(lambda.ErrCodeResourceConflictException, "update in progress", nil))
			},
			wantedErr: awserr.New(lambda.ErrCodeResourceConflictException, "update in progress", nil),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			m := mocks.NewMockapi(ctrl)
			tc.inClient(m)
			client := &Lambda{client: m}

			// WHEN
			fn, err := client.UpdateFunctionCode(context.Background(), "hello", tc.inCode)

			// THEN
			if tc.wantedErr != nil {
				var aerr awserr.Error
				require.True(t, errors.As(err, &aerr))
				require.Equal(t, tc.wantedErr.(awserr.Error).Code(), aerr.Code())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedVersion, fn.Version)
		})
	}
}

func TestLambda_UpdateFunctionConfiguration(t *testing.T) {
	testCases := map[string]struct {
		inConfig Configuration

		wantedInput *lambda.UpdateFunctionConfigurationInput
	}{
		"without a key": {
			inConfig: Configuration{Environment: map[string]string{"STAGE": "prod"}},
			wantedInput: &lambda.UpdateFunctionConfigurationInput{
				FunctionName: aws.String("hello"),
				Environment: &lambda.Environment{
					Variables: aws.StringMap(map[string]string{"STAGE": "prod"}),
				},
			},
		},
		"with a key": {
			inConfig: Configuration{
				Environment: map[string]string{},
				KMSKeyARN:   "arn:aws:kms:us-east-1:123456789012:key/abc",
			},
			wantedInput: &lambda.UpdateFunctionConfigurationInput{
				FunctionName: aws.String("hello"),
				Environment: &lambda.Environment{
					Variables: map[string]*string{},
				},
				KMSKeyArn: aws.String("arn:aws:kms:us-east-1:123456789012:key/abc"),
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mocks.NewMockapi(ctrl)
			m.EXPECT().UpdateFunctionConfigurationWithContext(gomock.Any(), tc.wantedInput).
				Return(&lambda.FunctionConfiguration{FunctionName: aws.String("hello")}, nil)
			client := &Lambda{client: m}

			_, err := client.UpdateFunctionConfiguration(context.Background(), "hello", tc.inConfig)

			require.NoError(t, err)
		})
	}
}

func TestLambda_AddInvokePermission(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockapi(ctrl)
	m.EXPECT().AddPermissionWithContext(gomock.Any(), &lambda.AddPermissionInput{
		Action:       aws.String("lambda:InvokeFunction"),
		FunctionName: aws.String("hello"),
		Qualifier:    aws.String("live"),
		Principal:    aws.String("apigateway.amazonaws.com"),
		SourceArn:    aws.String("arn:aws:execute-api:us-east-1:123456789012:abc123/*/*/*"),
		StatementId:  aws.String("web-api-access-1"),
	}).Return(nil, errors.New("some error"))
	client := &Lambda{client: m}

	err := client.AddInvokePermission(context.Background(), Permission{
		FunctionName: "hello",
		Qualifier:    "live",
		Principal:    "apigateway.amazonaws.com",
		SourceARN:    "arn:aws:execute-api:us-east-1:123456789012:abc123/*/*/*",
		StatementID:  "web-api-access-1",
	})

	require.EqualError(t, err, "add permission for apigateway.amazonaws.com to invoke function hello: some error")
}

func TestLambda_HasInvokePermission(t *testing.T) {
	const sourceARN = "arn:aws:execute-api:us-east-1:123456789012:abc123/*/*/*"
	permission := Permission{
		FunctionName: "hello",
		Principal:    "apigateway.amazonaws.com",
		SourceARN:    sourceARN,
	}
	testCases := map[string]struct {
		inClient func(m *mocks.Mockapi)

		wanted    bool
		wantedErr string
	}{
		"no policy": {
			inClient: func(m *mocks.Mockapi) {
				m.EXPECT().GetPolicyWithContext(gomock.Any(), &lambda.GetPolicyInput{
					FunctionName: aws.String("hello"),
				}).Return(nil, errNotFound)
			},
		},
		"matching statement": {
			inClient: func(m *mocks.Mockapi) {
				m.EXPECT().GetPolicyWithContext(gomock.Any(), gomock.Any()).Return(&lambda.GetPolicyOutput{
					Policy: aws.String(`{"Version":"2012-10-17","Statement":[
						{"Sid":"other","Effect":"Allow","Principal":"*","Action":"lambda:InvokeFunction"},
						{"Sid":"web-api-access","Effect":"Allow","Principal":{"Service":"apigateway.amazonaws.com"},"Action":"lambda:InvokeFunction",
						 "Condition":{"ArnLike":{"AWS:SourceArn":"` + sourceARN + `"}}}]}`),
				}, nil)
			},
			wanted: true,
		},
		"statement for another API": {
			inClient: func(m *mocks.Mockapi) {
				m.EXPECT().GetPolicyWithContext(gomock.Any(), gomock.Any()).Return(&lambda.GetPolicyOutput{
					Policy: aws.String(`{"Statement":[{"Effect":"Allow","Principal":{"Service":"apigateway.amazonaws.com"},"Action":"lambda:InvokeFunction",
						"Condition":{"ArnLike":{"AWS:SourceArn":"arn:aws:execute-api:us-east-1:123456789012:other/*/*/*"}}}]}`),
				}, nil)
			},
		},
		"other errors": {
			inClient: func(m *mocks.Mockapi) {
				m.EXPECT().GetPolicyWithContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))
			},
			wantedErr: "get policy of function hello: some error",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			m := mocks.NewMockapi(ctrl)
			tc.inClient(m)
			client := &Lambda{client: m}

			// WHEN
			got, err := client.HasInvokePermission(context.Background(), permission)

			// THEN
			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wanted, got)
		})
	}
}

func TestLambda_PublishAlias(t *testing.T) {
	testCases := map[string]struct {
		inClient func(m *mocks.Mockapi)

		wantedErr string
	}{
		"creates a missing alias": {
			inClient: func(m *mocks.Mockapi) {
				m.EXPECT().GetAliasWithContext(gomock.Any(), gomock.Any()).Return(nil, errNotFound)
				m.EXPECT().CreateAliasWithContext(gomock.Any(), &lambda.CreateAliasInput{
					FunctionName:    aws.String("hello"),
					Name:            aws.String("live"),
					FunctionVersion: aws.String("7"),
				}).Return(&lambda.AliasConfiguration{}, nil)
			},
		},
		"moves an existing alias": {
			inClient: func(m *mocks.Mockapi) {
				m.EXPECT().GetAliasWithContext(gomock.Any(), &lambda.GetAliasInput{
					FunctionName: aws.String("hello"),
					Name:         aws.String("live"),
				}).Return(&lambda.AliasConfiguration{FunctionVersion: aws.String("6")}, nil)
				m.EXPECT().UpdateAliasWithContext(gomock.Any(), &lambda.UpdateAliasInput{
					FunctionName:    aws.String("hello"),
					Name:            aws.String("live"),
					FunctionVersion: aws.String("7"),
				}).Return(&lambda.AliasConfiguration{}, nil)
			},
		},
		"wraps unexpected lookup errors": {
			inClient: func(m *mocks.Mockapi) {
				m.EXPECT().GetAliasWithContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))
				m.EXPECT().CreateAliasWithContext(gomock.Any(), gomock.Any()).Times(0)
			},
			wantedErr: "get alias live of function hello: some error",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mocks.NewMockapi(ctrl)
			tc.inClient(m)
			client := &Lambda{client: m}

			err := client.PublishAlias(context.Background(), "hello", "live", "7")

			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLambda_DeleteFunction(t *testing.T) {
	t.Run("ignores missing functions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mocks.NewMockapi(ctrl)
		m.EXPECT().DeleteFunctionWithContext(gomock.Any(), &lambda.DeleteFunctionInput{
			FunctionName: aws.String("hello"),
		}).Return(nil, errNotFound)
		client := &Lambda{client: m}

		require.NoError(t, client.DeleteFunction(context.Background(), "hello"))
	})
	t.Run("wraps other errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mocks.NewMockapi(ctrl)
		m.EXPECT().DeleteFunctionWithContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))
		client := &Lambda{client: m}

		require.EqualError(t, client.DeleteFunction(context.Background(), "hello"), "delete function hello: some error")
	})
}

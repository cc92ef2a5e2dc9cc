// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package apigateway

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/apigateway"
	"github.com/aws/lambdeploy/internal/pkg/aws/apigateway/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const mockAPIID = "abc123"

var errNotFound = awserr.New(apigateway.ErrCodeNotFoundException, "not found", nil)

func TestAPIGateway_Resources(t *testing.T) {
	testCases := map[string]struct {
		inClient func(m *mocks.Mockapi)

		wanted    []Resource
		wantedErr error
	}{
		"follows every page": {
			inClient: func(m *mocks.Mockapi) {
				gomock.InOrder(
					m.EXPECT().GetResourcesWithContext(gomock.Any(), &apigateway.GetResourcesInput{
						RestApiId: aws.String(mockAPIID),
						Limit:     aws.Int64(pageSize),
					}).Return(&apigateway.GetResourcesOutput{
						Items: []*apigateway.Resource{
							{Id: aws.String("root"), Path: aws.String("/")},
						},
						Position: aws.String("next"),
					}, nil),
					m.EXPECT().GetResourcesWithContext(gomock.Any(), &apigateway.GetResourcesInput{
						RestApiId: aws.String(mockAPIID),
						Limit:     aws.Int64(pageSize),
						Position:  aws.String("next"),
					}).Return(&apigateway.GetResourcesOutput{
						Items: []*apigateway.Resource{
							{
								Id:       aws.String("r1"),
								ParentId: aws.String("root"),
								Path:     aws.String("/hello"),
								PathPart: aws.String("hello"),
								ResourceMethods: map[string]*apigateway.Method{
									"POST": {},
									"GET":  {},
								},
							},
						},
					}, nil),
				)
			},
			wanted: []Resource{
				{ID: "root", Path: "/", Methods: []string{}},
				{ID: "r1", ParentID: "root", Path: "/hello", PathPart: "hello", Methods: []string{"GET", "POST"}},
			},
		},
		"wraps errors": {
			inClient: func(m *mocks.Mockapi) {
				m.EXPECT().GetResourcesWithContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))
			},
			wantedErr: errors.New("get resources of REST API abc123: some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			m := mocks.NewMockapi(ctrl)
			tc.inClient(m)
			client := &APIGateway{client: m}

			// WHEN
			got, err := client.Resources(context.Background(), mockAPIID)

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

func TestAPIGateway_CreateResource(t *testing.T) {
	// GIVEN
	ctrl := gomock.NewController(t)
	m := mocks.NewMockapi(ctrl)
	m.EXPECT().CreateResourceWithContext(gomock.Any(), &apigateway.CreateResourceInput{
		RestApiId: aws.String(mockAPIID),
		ParentId:  aws.String("root"),
		PathPart:  aws.String("users"),
	}).Return(&apigateway.Resource{
		Id:       aws.String("r2"),
		ParentId: aws.String("root"),
		Path:     aws.String("/users"),
		PathPart: aws.String("users"),
	}, nil)
	client := &APIGateway{client: m}

	// WHEN
	got, err := client.CreateResource(context.Background(), mockAPIID, "root", "users")

	// THEN
	require.NoError(t, err)
	require.Equal(t, Resource{ID: "r2", ParentID: "root", Path: "/users", PathPart: "users", Methods: []string{}}, got)
}

func TestAPIGateway_DeleteMethod(t *testing.T) {
	testCases := map[string]struct {
		inErr     error
		wantedErr error
	}{
		"success": {},
		"ignores missing methods": {
			inErr: errNotFound,
		},
		"wraps other errors": {
			inErr:     errors.New("some error"),
			wantedErr: errors.New("delete method GET of resource root: some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			m := mocks.NewMockapi(ctrl)
			m.EXPECT().DeleteMethodWithContext(gomock.Any(), &apigateway.DeleteMethodInput{
				RestApiId:  aws.String(mockAPIID),
				ResourceId: aws.String("root"),
				HttpMethod: aws.String("GET"),
			}).Return(&apigateway.DeleteMethodOutput{}, tc.inErr)
			client := &APIGateway{client: m}

			// WHEN
			err := client.DeleteMethod(context.Background(), mockAPIID, "root", "GET")

			// THEN
			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAPIGateway_PutMethod(t *testing.T) {
	testCases := map[string]struct {
		in     Method
		wanted *apigateway.PutMethodInput
	}{
		"open method": {
			in: Method{HTTPMethod: "GET", AuthorizationType: "NONE"},
			wanted: &apigateway.PutMethodInput{
				RestApiId:         aws.String(mockAPIID),
				ResourceId:        aws.String("r1"),
				HttpMethod:        aws.String("GET"),
				AuthorizationType: aws.String("NONE"),
				ApiKeyRequired:    aws.Bool(false),
			},
		},
		"cognito authorizer with scopes": {
			in: Method{
				HTTPMethod:          "POST",
				AuthorizationType:   "COGNITO_USER_POOLS",
				AuthorizerID:        "auth1",
				AuthorizationScopes: []string{"email"},
				APIKeyRequired:      true,
			},
			wanted: &apigateway.PutMethodInput{
				RestApiId:           aws.String(mockAPIID),
				ResourceId:          aws.String("r1"),
				HttpMethod:          aws.String("POST"),
				AuthorizationType:   aws.String("COGNITO_USER_POOLS"),
				AuthorizerId:        aws.String("auth1"),
				AuthorizationScopes: aws.StringSlice([]string{"email"}),
				ApiKeyRequired:      aws.Bool(true),
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			m := mocks.NewMockapi(ctrl)
			m.EXPECT().PutMethodWithContext(gomock.Any(), tc.wanted).Return(&apigateway.Method{}, nil)
			client := &APIGateway{client: m}

			// WHEN
			err := client.PutMethod(context.Background(), mockAPIID, "r1", tc.in)

			// THEN
			require.NoError(t, err)
		})
	}
}

func TestAPIGateway_PutMethodResponse(t *testing.T) {
	// GIVEN
	ctrl := gomock.NewController(t)
	m := mocks.NewMockapi(ctrl)
	m.EXPECT().PutMethodResponseWithContext(gomock.Any(), &apigateway.PutMethodResponseInput{
		RestApiId:  aws.String(mockAPIID),
		ResourceId: aws.String("r1"),
		HttpMethod: aws.String("OPTIONS"),
		StatusCode: aws.String("200"),
		ResponseParameters: map[string]*bool{
			"method.response.header.Access-Control-Allow-Origin":  aws.Bool(false),
			"method.response.header.Access-Control-Allow-Methods": aws.Bool(false),
		},
	}).Return(nil, errors.New("some error"))
	client := &APIGateway{client: m}

	// WHEN
	err := client.PutMethodResponse(context.Background(), mockAPIID, "r1", MethodResponse{
		HTTPMethod: "OPTIONS",
		StatusCode: "200",
		Headers:    []string{"Access-Control-Allow-Origin", "Access-Control-Allow-Methods"},
	})

	// THEN
	require.EqualError(t, err, "put 200 response of method OPTIONS of resource r1: some error")
}

func TestAPIGateway_PutIntegration(t *testing.T) {
	testCases := map[string]struct {
		in     Integration
		wanted *apigateway.PutIntegrationInput
	}{
		"function proxy": {
			in: Integration{
				HTTPMethod:  "GET",
				Type:        "AWS_PROXY",
				URI:         "arn:aws:apigateway:us-east-1:lambda:path/2015-03-31/functions/arn/invocations",
				Credentials: "arn:aws:iam::*:user/*",
			},
			wanted: &apigateway.PutIntegrationInput{
				RestApiId:             aws.String(mockAPIID),
				ResourceId:            aws.String("r1"),
				HttpMethod:            aws.String("GET"),
				Type:                  aws.String("AWS_PROXY"),
				IntegrationHttpMethod: aws.String("POST"),
				Uri:                   aws.String("arn:aws:apigateway:us-east-1:lambda:path/2015-03-31/functions/arn/invocations"),
				Credentials:           aws.String("arn:aws:iam::*:user/*"),
			},
		},
		"mock": {
			in: Integration{
				HTTPMethod:       "OPTIONS",
				Type:             "MOCK",
				RequestTemplates: map[string]string{"application/json": `{"statusCode": 200}`},
			},
			wanted: &apigateway.PutIntegrationInput{
				RestApiId:        aws.String(mockAPIID),
				ResourceId:       aws.String("r1"),
				HttpMethod:       aws.String("OPTIONS"),
				Type:             aws.String("MOCK"),
				RequestTemplates: aws.StringMap(map[string]string{"application/json": `{"statusCode": 200}`}),
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			m := mocks.NewMockapi(ctrl)
			m.EXPECT().PutIntegrationWithContext(gomock.Any(), tc.wanted).Return(&apigateway.Integration{}, nil)
			client := &APIGateway{client: m}

			// WHEN
			err := client.PutIntegration(context.Background(), mockAPIID, "r1", tc.in)

			// THEN
			require.NoError(t, err)
		})
	}
}

func TestAPIGateway_PutIntegrationResponse(t *testing.T) {
	// GIVEN
	ctrl := gomock.NewController(t)
	m := mocks.NewMockapi(ctrl)
	m.EXPECT().PutIntegrationResponseWithContext(gomock.Any(), &apigateway.PutIntegrationResponseInput{
		RestApiId:  aws.String(mockAPIID),
		ResourceId: aws.String("r1"),
		HttpMethod: aws.String("OPTIONS"),
		StatusCode: aws.String("200"),
		ResponseParameters: map[string]*string{
			"method.response.header.Access-Control-Allow-Origin": aws.String("'*'"),
		},
	}).Return(&apigateway.IntegrationResponse{}, nil)
	client := &APIGateway{client: m}

	// WHEN
	err := client.PutIntegrationResponse(context.Background(), mockAPIID, "r1", IntegrationResponse{
		HTTPMethod: "OPTIONS",
		StatusCode: "200",
		Headers:    map[string]string{"Access-Control-Allow-Origin": "'*'"},
	})

	// THEN
	require.NoError(t, err)
}

func TestAPIGateway_Authorizers(t *testing.T) {
	// GIVEN
	ctrl := gomock.NewController(t)
	m := mocks.NewMockapi(ctrl)
	m.EXPECT().GetAuthorizersWithContext(gomock.Any(), &apigateway.GetAuthorizersInput{
		RestApiId: aws.String(mockAPIID),
		Limit:     aws.Int64(pageSize),
	}).Return(&apigateway.GetAuthorizersOutput{
		Items: []*apigateway.Authorizer{
			{Id: aws.String("a1"), Name: aws.String("first"), Type: aws.String("TOKEN"), AuthorizerUri: aws.String("uri")},
		},
	}, nil)
	client := &APIGateway{client: m}

	// WHEN
	got, err := client.Authorizers(context.Background(), mockAPIID)

	// THEN
	require.NoError(t, err)
	require.Equal(t, []Authorizer{{ID: "a1", Name: "first", Type: "TOKEN", URI: "uri"}}, got)
}

func TestAPIGateway_CreateAuthorizer(t *testing.T) {
	testCases := map[string]struct {
		in     Authorizer
		wanted *apigateway.CreateAuthorizerInput
	}{
		"token authorizer": {
			in: Authorizer{
				Name:                 "first",
				Type:                 "TOKEN",
				URI:                  "uri",
				IdentitySource:       "method.request.header.Authorization",
				ValidationExpression: "^Bearer",
				ResultTTL:            aws.Int64(0),
			},
			wanted: &apigateway.CreateAuthorizerInput{
				RestApiId:                    aws.String(mockAPIID),
				Name:                         aws.String("first"),
				Type:                         aws.String("TOKEN"),
				AuthorizerUri:                aws.String("uri"),
				IdentitySource:               aws.String("method.request.header.Authorization"),
				IdentityValidationExpression: aws.String("^Bearer"),
				AuthorizerResultTtlInSeconds: aws.Int64(0),
			},
		},
		"cognito authorizer": {
			in: Authorizer{
				Name:           "pool",
				Type:           "COGNITO_USER_POOLS",
				IdentitySource: "method.request.header.Authorization",
				ProviderARNs:   []string{"arn:pool"},
			},
			wanted: &apigateway.CreateAuthorizerInput{
				RestApiId:      aws.String(mockAPIID),
				Name:           aws.String("pool"),
				Type:           aws.String("COGNITO_USER_POOLS"),
				IdentitySource: aws.String("method.request.header.Authorization"),
				ProviderARNs:   aws.StringSlice([]string{"arn:pool"}),
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			m := mocks.NewMockapi(ctrl)
			m.EXPECT().CreateAuthorizerWithContext(gomock.Any(), tc.wanted).Return(&apigateway.Authorizer{Id: aws.String("a2")}, nil)
			client := &APIGateway{client: m}

			// WHEN
			id, err := client.CreateAuthorizer(context.Background(), mockAPIID, tc.in)

			// THEN
			require.NoError(t, err)
			require.Equal(t, "a2", id)
		})
	}
}

func TestAPIGateway_CreateDeployment(t *testing.T) {
	// GIVEN
	ctrl := gomock.NewController(t)
	m := mocks.NewMockapi(ctrl)
	m.EXPECT().CreateDeploymentWithContext(gomock.Any(), &apigateway.CreateDeploymentInput{
		RestApiId: aws.String(mockAPIID),
		StageName: aws.String("latest"),
		Variables: aws.StringMap(map[string]string{"lambdaVersion": "latest"}),
	}).Return(&apigateway.Deployment{Id: aws.String("d1")}, nil)
	client := &APIGateway{client: m}

	// WHEN
	id, err := client.CreateDeployment(context.Background(), mockAPIID, "latest", map[string]string{"lambdaVersion": "latest"})

	// THEN
	require.NoError(t, err)
	require.Equal(t, "d1", id)
}

func TestAPIGateway_DeleteRestAPI(t *testing.T) {
	testCases := map[string]struct {
		inErr     error
		wantedErr error
	}{
		"success": {},
		"ignores APIs that are already gone": {
			inErr: errNotFound,
		},
		"wraps other errors": {
			inErr:     errors.New("some error"),
			wantedErr: errors.New("delete REST API abc123: some error"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			m := mocks.NewMockapi(ctrl)
			m.EXPECT().DeleteRestApiWithContext(gomock.Any(), &apigateway.DeleteRestApiInput{
				RestApiId: aws.String(mockAPIID),
			}).Return(&apigateway.DeleteRestApiOutput{}, tc.inErr)
			client := &APIGateway{client: m}

			// WHEN
			err := client.DeleteRestAPI(context.Background(), mockAPIID)

			// THEN
			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestInvokeURL(t *testing.T) {
	require.Equal(t, "https://abc123.execute-api.eu-west-1.amazonaws.com/latest", InvokeURL(mockAPIID, "eu-west-1", "latest"))
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package apigateway provides a client to make API requests to Amazon API Gateway REST APIs.
package apigateway

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/apigateway"
)

const (
	pageSize = 500

	// IntegrationHTTPMethod is the method that API Gateway uses to invoke functions.
	IntegrationHTTPMethod = "POST"
)

type api interface {
	GetResourcesWithContext(ctx aws.Context, input *apigateway.GetResourcesInput, opts ...request.Option) (*apigateway.GetResourcesOutput, error)
	CreateResourceWithContext(ctx aws.Context, input *apigateway.CreateResourceInput, opts ...request.Option) (*apigateway.Resource, error)
	DeleteResourceWithContext(ctx aws.Context, input *apigateway.DeleteResourceInput, opts ...request.Option) (*apigateway.DeleteResourceOutput, error)
	DeleteMethodWithContext(ctx aws.Context, input *apigateway.DeleteMethodInput, opts ...request.Option) (*apigateway.DeleteMethodOutput, error)
	PutMethodWithContext(ctx aws.Context, input *apigateway.PutMethodInput, opts ...request.Option) (*apigateway.Method, error)
	PutMethodResponseWithContext(ctx aws.Context, input *apigateway.PutMethodResponseInput, opts ...request.Option) (*apigateway.MethodResponse, error)
	PutIntegrationWithContext(ctx aws.Context, input *apigateway.PutIntegrationInput, opts ...request.Option) (*apigateway.Integration, error)
	PutIntegrationResponseWithContext(ctx aws.Context, input *apigateway.PutIntegrationResponseInput, opts ...request.Option) (*apigateway.IntegrationResponse, error)
	GetAuthorizersWithContext(ctx aws.Context, input *apigateway.GetAuthorizersInput, opts ...request.Option) (*apigateway.GetAuthorizersOutput, error)
	CreateAuthorizerWithContext(ctx aws.Context, input *apigateway.CreateAuthorizerInput, opts ...request.Option) (*apigateway.Authorizer, error)
	DeleteAuthorizerWithContext(ctx aws.Context, input *apigateway.DeleteAuthorizerInput, opts ...request.Option) (*apigateway.DeleteAuthorizerOutput, error)
	CreateDeploymentWithContext(ctx aws.Context, input *apigateway.CreateDeploymentInput, opts ...request.Option) (*apigateway.Deployment, error)
	DeleteRestApiWithContext(ctx aws.Context, input *apigateway.DeleteRestApiInput, opts ...request.Option) (*apigateway.DeleteRestApiOutput, error)
}

// APIGateway wraps the AWS SDK's API Gateway client.
type APIGateway struct {
	client api
}

// New returns an APIGateway client configured against the input session.
func New(s *session.Session) *APIGateway {
	return &APIGateway{
		client: apigateway.New(s),
	}
}

// Resource is a path of a REST API.
type Resource struct {
	ID       string
	ParentID string
	Path     string
	PathPart string
	// Methods are the HTTP verbs configured on the resource, sorted.
	Methods []string
}

// Method configures how a verb of a resource is authorized.
type Method struct {
	HTTPMethod          string
	AuthorizationType   string
	AuthorizerID        string
	AuthorizationScopes []string
	APIKeyRequired      bool
}

// MethodResponse declares a status code of a method and the headers it may return.
type MethodResponse struct {
	HTTPMethod string
	StatusCode string
	Headers    []string
}

// Integration connects a method to its backend.
type Integration struct {
	HTTPMethod       string
	Type             string
	URI              string
	Credentials      string
	RequestTemplates map[string]string
}

// IntegrationResponse maps a backend response to a method response.
type IntegrationResponse struct {
	HTTPMethod       string
	StatusCode       string
	SelectionPattern string
	// Headers maps header names to their value expressions.
	Headers   map[string]string
	Templates map[string]string
}

// Authorizer authorizes requests to the methods that reference it.
type Authorizer struct {
	ID                   string
	Name                 string
	Type                 string
	URI                  string
	IdentitySource       string
	ValidationExpression string
	ResultTTL            *int64
	ProviderARNs         []string
}

// Resources returns every resource of a REST API.
func (c *APIGateway) Resources(ctx context.Context, apiID string) ([]Resource, error) {
	var resources []Resource
	var position *string
	for {
		out, err := c.client.GetResourcesWithContext(ctx, &apigateway.GetResourcesInput{
			RestApiId: aws.String(apiID),
			Limit:     aws.Int64(pageSize),
			Position:  position,
		})
		if err != nil {
			return nil, fmt.Errorf("get resources of REST API %s: %w", apiID, err)
		}
		for _, item := range out.Items {
			resources = append(resources, toResource(item))
		}
		if aws.StringValue(out.Position) == "" {
			return resources, nil
		}
		position = out.Position
	}
}

// CreateResource creates a child resource of the parent.
func (c *APIGateway) CreateResource(ctx context.Context, apiID, parentID, pathPart string) (Resource, error) {
	out, err := c.client.CreateResourceWithContext(ctx, &apigateway.CreateResourceInput{
		RestApiId: aws.String(apiID),
		ParentId:  aws.String(parentID),
		PathPart:  aws.String(pathPart),
	})
	if err != nil {
		return Resource{}, fmt.Errorf("create resource %s under %s: %w", pathPart, parentID, err)
	}
	return toResource(out), nil
}

// DeleteResource deletes a resource, its methods and its children.
func (c *APIGateway) DeleteResource(ctx context.Context, apiID, resourceID string) error {
	if _, err := c.client.DeleteResourceWithContext(ctx, &apigateway.DeleteResourceInput{
		RestApiId:  aws.String(apiID),
		ResourceId: aws.String(resourceID),
	}); err != nil {
		return fmt.Errorf("delete resource %s: %w", resourceID, err)
	}
	return nil
}

// DeleteMethod deletes a verb of a resource.
// If the method does not exist it returns nil.
func (c *APIGateway) DeleteMethod(ctx context.Context, apiID, resourceID, httpMethod string) error {
	if _, err := c.client.DeleteMethodWithContext(ctx, &apigateway.DeleteMethodInput{
		RestApiId:  aws.String(apiID),
		ResourceId: aws.String(resourceID),
		HttpMethod: aws.String(httpMethod),
	}); err != nil {
		if isNotFoundErr(err) {
			return nil
		}
		return fmt.Errorf("delete method %s of resource %s: %w", httpMethod, resourceID, err)
	}
	return nil
}

// PutMethod creates or replaces a method of a resource.
func (c *APIGateway) PutMethod(ctx context.Context, apiID, resourceID string, m Method) error {
	in := &apigateway.PutMethodInput{
		RestApiId:         aws.String(apiID),
		ResourceId:        aws.String(resourceID),
		HttpMethod:        aws.String(m.HTTPMethod),
		AuthorizationType: aws.String(m.AuthorizationType),
		ApiKeyRequired:    aws.Bool(m.APIKeyRequired),
	}
	if m.AuthorizerID != "" {
		in.AuthorizerId = aws.String(m.AuthorizerID)
	}
	if len(m.AuthorizationScopes) > 0 {
		in.AuthorizationScopes = aws.StringSlice(m.AuthorizationScopes)
	}
	if _, err := c.client.PutMethodWithContext(ctx, in); err != nil {
		return fmt.Errorf("put method %s of resource %s: %w", m.HTTPMethod, resourceID, err)
	}
	return nil
}

// PutMethodResponse declares a response of a method.
func (c *APIGateway) PutMethodResponse(ctx context.Context, apiID, resourceID string, r MethodResponse) error {
	in := &apigateway.PutMethodResponseInput{
		RestApiId:  aws.String(apiID),
		ResourceId: aws.String(resourceID),
		HttpMethod: aws.String(r.HTTPMethod),
		StatusCode: aws.String(r.StatusCode),
	}
	if len(r.Headers) > 0 {
		in.ResponseParameters = make(map[string]*bool, len(r.Headers))
		for _, header := range r.Headers {
			in.ResponseParameters[responseHeaderParameter(header)] = aws.Bool(false)
		}
	}
	if _, err := c.client.PutMethodResponseWithContext(ctx, in); err != nil {
		return fmt.Errorf("put %s response of method %s of resource %s: %w", r.StatusCode, r.HTTPMethod, resourceID, err)
	}
	return nil
}

// PutIntegration creates or replaces the integration of a method.
func (c *APIGateway) PutIntegration(ctx context.Context, apiID, resourceID string, i Integration) error {
	in := &apigateway.PutIntegrationInput{
		RestApiId:  aws.String(apiID),
		ResourceId: aws.String(resourceID),
		HttpMethod: aws.String(i.HTTPMethod),
		Type:       aws.String(i.Type),
	}
	if i.URI != "" {
		in.Uri = aws.String(i.URI)
		in.IntegrationHttpMethod = aws.String(IntegrationHTTPMethod)
	}
	if i.Credentials != "" {
		in.Credentials = aws.String(i.Credentials)
	}
	if len(i.RequestTemplates) > 0 {
		in.RequestTemplates = aws.StringMap(i.RequestTemplates)
	}
	if _, err := c.client.PutIntegrationWithContext(ctx, in); err != nil {
		return fmt.Errorf("put integration of method %s of resource %s: %w", i.HTTPMethod, resourceID, err)
	}
	return nil
}

// PutIntegrationResponse creates or replaces a response of the integration of a method.
func (c *APIGateway) PutIntegrationResponse(ctx context.Context, apiID, resourceID string, r IntegrationResponse) error {
	in := &apigateway.PutIntegrationResponseInput{
		RestApiId:  aws.String(apiID),
		ResourceId: aws.String(resourceID),
		HttpMethod: aws.String(r.HTTPMethod),
		StatusCode: aws.String(r.StatusCode),
	}
	if r.SelectionPattern != "" {
		in.SelectionPattern = aws.String(r.SelectionPattern)
	}
	if len(r.Headers) > 0 {
		in.ResponseParameters = make(map[string]*string, len(r.Headers))
		for header, value := range r.Headers {
			in.ResponseParameters[responseHeaderParameter(header)] = aws.String(value)
		}
	}
	if len(r.Templates) > 0 {
		in.ResponseTemplates = aws.StringMap(r.Templates)
	}
	if _, err := c.client.PutIntegrationResponseWithContext(ctx, in); err != nil {
		return fmt.Errorf("put %s integration response of method %s of resource %s: %w", r.StatusCode, r.HTTPMethod, resourceID, err)
	}
	return nil
}

// Authorizers returns every authorizer of a REST API.
func (c *APIGateway) Authorizers(ctx context.Context, apiID string) ([]Authorizer, error) {
	var authorizers []Authorizer
	var position *string
	for {
		out, err := c.client.GetAuthorizersWithContext(ctx, &apigateway.GetAuthorizersInput{
			RestApiId: aws.String(apiID),
			Limit:     aws.Int64(pageSize),
			Position:  position,
		})
		if err != nil {
			return nil, fmt.Errorf("get authorizers of REST API %s: %w", apiID, err)
		}
		for _, item := range out.Items {
			authorizers = append(authorizers, Authorizer{
				ID:   aws.StringValue(item.Id),
				Name: aws.StringValue(item.Name),
				Type: aws.StringValue(item.Type),
				URI:  aws.StringValue(item.AuthorizerUri),
			})
		}
		if aws.StringValue(out.Position) == "" {
			return authorizers, nil
		}
		position = out.Position
	}
}

// DeleteAuthorizer deletes an authorizer.
func (c *APIGateway) DeleteAuthorizer(ctx context.Context, apiID, authorizerID string) error {
	if _, err := c.client.DeleteAuthorizerWithContext(ctx, &apigateway.DeleteAuthorizerInput{
		RestApiId:    aws.String(apiID),
		AuthorizerId: aws.String(authorizerID),
	}); err != nil {
		return fmt.Errorf("delete authorizer %s: %w", authorizerID, err)
	}
	return nil
}

// CreateAuthorizer creates an authorizer and returns its ID.
func (c *APIGateway) CreateAuthorizer(ctx context.Context, apiID string, a Authorizer) (string, error) {
	in := &apigateway.CreateAuthorizerInput{
		RestApiId:      aws.String(apiID),
		Name:           aws.String(a.Name),
		Type:           aws.String(a.Type),
		IdentitySource: aws.String(a.IdentitySource),
	}
	if a.URI != "" {
		in.AuthorizerUri = aws.String(a.URI)
	}
	if len(a.ProviderARNs) > 0 {
		in.ProviderARNs = aws.StringSlice(a.ProviderARNs)
	}
	if a.ValidationExpression != "" {
		in.IdentityValidationExpression = aws.String(a.ValidationExpression)
	}
	if a.ResultTTL != nil {
		in.AuthorizerResultTtlInSeconds = aws.Int64(*a.ResultTTL)
	}
	out, err := c.client.CreateAuthorizerWithContext(ctx, in)
	if err != nil {
		return "", fmt.Errorf("create authorizer %s: %w", a.Name, err)
	}
	return aws.StringValue(out.Id), nil
}

// CreateDeployment deploys the REST API to a stage with the stage variables, and returns the ID of the deployment.
func (c *APIGateway) CreateDeployment(ctx context.Context, apiID, stage string, variables map[string]string) (string, error) {
	out, err := c.client.CreateDeploymentWithContext(ctx, &apigateway.CreateDeploymentInput{
		RestApiId: aws.String(apiID),
		StageName: aws.String(stage),
		Variables: aws.StringMap(variables),
	})
	if err != nil {
		return "", fmt.Errorf("deploy REST API %s to stage %s: %w", apiID, stage, err)
	}
	return aws.StringValue(out.Id), nil
}

// DeleteRestAPI deletes a REST API.
// If the REST API does not exist it returns nil.
func (c *APIGateway) DeleteRestAPI(ctx context.Context, apiID string) error {
	if _, err := c.client.DeleteRestApiWithContext(ctx, &apigateway.DeleteRestApiInput{
		RestApiId: aws.String(apiID),
	}); err != nil {
		if isNotFoundErr(err) {
			return nil
		}
		return fmt.Errorf("delete REST API %s: %w", apiID, err)
	}
	return nil
}

// InvokeURL returns the URL of a stage of a REST API.
func InvokeURL(apiID, region, stage string) string {
	return fmt.Sprintf("https://%s.execute-api.%s.amazonaws.com/%s", apiID, region, stage)
}

func responseHeaderParameter(header string) string {
	return "method.response.header." + header
}

func toResource(in *apigateway.Resource) Resource {
	methods := make([]string, 0, len(in.ResourceMethods))
	for verb := range in.ResourceMethods {
		methods = append(methods, verb)
	}
	sort.Strings(methods)
	return Resource{
		ID:       aws.StringValue(in.Id),
		ParentID: aws.StringValue(in.ParentId),
		Path:     aws.StringValue(in.Path),
		PathPart: aws.StringValue(in.PathPart),
		Methods:  methods,
	}
}

func isNotFoundErr(err error) bool {
	aerr, ok := err.(awserr.Error)
	return ok && aerr.Code() == apigateway.ErrCodeNotFoundException
}

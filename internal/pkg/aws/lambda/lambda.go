// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package lambda provides a client to make API requests to AWS Lambda.
package lambda

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/lambda"
)

const invokeAction = "lambda:InvokeFunction"

type api interface {
	GetFunctionConfigurationWithContext(ctx aws.Context, input *lambda.GetFunctionConfigurationInput, opts ...request.Option) (*lambda.FunctionConfiguration, error)
	UpdateFunctionCodeWithContext(ctx aws.Context, input *lambda.UpdateFunctionCodeInput, opts ...request.Option) (*lambda.FunctionConfiguration, error)
	UpdateFunctionConfigurationWithContext(ctx aws.Context, input *lambda.UpdateFunctionConfigurationInput, opts ...request.Option) (*lambda.FunctionConfiguration, error)
	AddPermissionWithContext(ctx aws.Context, input *lambda.AddPermissionInput, opts ...request.Option) (*lambda.AddPermissionOutput, error)
	GetPolicyWithContext(ctx aws.Context, input *lambda.GetPolicyInput, opts ...request.Option) (*lambda.GetPolicyOutput, error)
	GetAliasWithContext(ctx aws.Context, input *lambda.GetAliasInput, opts ...request.Option) (*lambda.AliasConfiguration, error)
	CreateAliasWithContext(ctx aws.Context, input *lambda.CreateAliasInput, opts ...request.Option) (*lambda.AliasConfiguration, error)
	UpdateAliasWithContext(ctx aws.Context, input *lambda.UpdateAliasInput, opts ...request.Option) (*lambda.AliasConfiguration, error)
	DeleteFunctionWithContext(ctx aws.Context, input *lambda.DeleteFunctionInput, opts ...request.Option) (*lambda.DeleteFunctionOutput, error)
}

// Lambda wraps the AWS SDK's Lambda client.
type Lambda struct {
	client api
}

// New returns a Lambda client configured against the input session.
func New(s *session.Session) *Lambda {
	return &Lambda{
		client: lambda.New(s),
	}
}

// Function is the configuration of a function version.
type Function struct {
	Name        string
	ARN         string
	Version     string
	Role        string
	Environment map[string]string
	KMSKeyARN   string
}

// Code is the deployment package of a function: either inline or an object in S3.
type Code struct {
	ZipFile  []byte
	S3Bucket string
	S3Key    string
}

// Configuration is the part of a function's configuration that lambdeploy manages.
type Configuration struct {
	Environment map[string]string
	KMSKeyARN   string
}

// Permission allows a service to invoke a function.
type Permission struct {
	FunctionName string
	Qualifier    string
	Principal    string
	SourceARN    string
	StatementID  string
}

// FunctionConfiguration returns the configuration of the latest version of a function.
func (c *Lambda) FunctionConfiguration(ctx context.Context, name string) (*Function, error) {
	out, err := c.client.GetFunctionConfigurationWithContext(ctx, &lambda.GetFunctionConfigurationInput{
		FunctionName: aws.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("get configuration of function %s: %w", name, err)
	}
	return toFunction(out), nil
}

// UpdateFunctionCode replaces the code of a function and publishes a new version.
func (c *Lambda) UpdateFunctionCode(ctx context.Context, name string, code Code) (*Function, error) {
	in := &lambda.UpdateFunctionCodeInput{
		FunctionName: aws.String(name),
		Publish:      aws.Bool(true),
	}
	if code.S3Key != "" {
		in.S3Bucket = aws.String(code.S3Bucket)
		in.S3Key = aws.String(code.S3Key)
	} else {
		in.ZipFile = code.ZipFile
	}
	out, err := c.client.UpdateFunctionCodeWithContext(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("update code of function %s: %w", name, err)
	}
	return toFunction(out), nil
}

// UpdateFunctionConfiguration replaces the environment of a function, and its encryption key when one is set.
func (c *Lambda) UpdateFunctionConfiguration(ctx context.Context, name string, cfg Configuration) (*Function, error) {
	in := &lambda.UpdateFunctionConfigurationInput{
		FunctionName: aws.String(name),
		Environment: &lambda.Environment{
			Variables: aws.StringMap(cfg.Environment),
		},
	}
	if cfg.KMSKeyARN != "" {
		in.KMSKeyArn = aws.String(cfg.KMSKeyARN)
	}
	out, err := c.client.UpdateFunctionConfigurationWithContext(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("update configuration of function %s: %w", name, err)
	}
	return toFunction(out), nil
}

// AddInvokePermission adds a statement to the resource policy of a function that allows the principal to invoke it.
func (c *Lambda) AddInvokePermission(ctx context.Context, p Permission) error {
	in := &lambda.AddPermissionInput{
		Action:       aws.String(invokeAction),
		FunctionName: aws.String(p.FunctionName),
		Principal:    aws.String(p.Principal),
		SourceArn:    aws.String(p.SourceARN),
		StatementId:  aws.String(p.StatementID),
	}
	if p.Qualifier != "" {
		in.Qualifier = aws.String(p.Qualifier)
	}
	if _, err := c.client.AddPermissionWithContext(ctx, in); err != nil {
		return fmt.Errorf("add permission for %s to invoke function %s: %w", p.Principal, p.FunctionName, err)
	}
	return nil
}

// HasInvokePermission returns true if the resource policy of the function already allows
// the principal to invoke it from the source ARN.
func (c *Lambda) HasInvokePermission(ctx context.Context, p Permission) (bool, error) {
	in := &lambda.GetPolicyInput{
		FunctionName: aws.String(p.FunctionName),
	}
	if p.Qualifier != "" {
		in.Qualifier = aws.String(p.Qualifier)
	}
	out, err := c.client.GetPolicyWithContext(ctx, in)
	if err != nil {
		if isNotFoundErr(err) {
			// The function has no resource policy yet.
			return false, nil
		}
		return false, fmt.Errorf("get policy of function %s: %w", p.FunctionName, err)
	}
	var doc policyDocument
	if err := json.Unmarshal([]byte(aws.StringValue(out.Policy)), &doc); err != nil {
		return false, fmt.Errorf("unmarshal policy of function %s: %w", p.FunctionName, err)
	}
	for _, stmt := range doc.Statement {
		if stmt.allowsInvoke(p.Principal, p.SourceARN) {
			return true, nil
		}
	}
	return false, nil
}

// PublishAlias points the alias at the function version, creating the alias if it does not exist.
func (c *Lambda) PublishAlias(ctx context.Context, name, alias, version string) error {
	_, err := c.client.GetAliasWithContext(ctx, &lambda.GetAliasInput{
		FunctionName: aws.String(name),
		Name:         aws.String(alias),
	})
	if err != nil {
		if !isNotFoundErr(err) {
			return fmt.Errorf("get alias %s of function %s: %w", alias, name, err)
		}
		if _, err := c.client.CreateAliasWithContext(ctx, &lambda.CreateAliasInput{
			FunctionName:    aws.String(name),
			Name:            aws.String(alias),
			FunctionVersion: aws.String(version),
		}); err != nil {
			return fmt.Errorf("create alias %s of function %s: %w", alias, name, err)
		}
		return nil
	}
	if _, err := c.client.UpdateAliasWithContext(ctx, &lambda.UpdateAliasInput{
		FunctionName:    aws.String(name),
		Name:            aws.String(alias),
		FunctionVersion: aws.String(version),
	}); err != nil {
		return fmt.Errorf("update alias %s of function %s: %w", alias, name, err)
	}
	return nil
}

// DeleteFunction deletes a function and all of its versions.
// If the function does not exist it returns nil.
func (c *Lambda) DeleteFunction(ctx context.Context, name string) error {
	if _, err := c.client.DeleteFunctionWithContext(ctx, &lambda.DeleteFunctionInput{
		FunctionName: aws.String(name),
	}); err != nil {
		if isNotFoundErr(err) {
			return nil
		}
		return fmt.Errorf("delete function %s: %w", name, err)
	}
	return nil
}

type policyDocument struct {
	Statement []policyStatement `json:"Statement"`
}

type policyStatement struct {
	Effect    string                            `json:"Effect"`
	Action    interface{}                       `json:"Action"`
	Principal interface{}                       `json:"Principal"`
	Condition map[string]map[string]interface{} `json:"Condition"`
}

func (s policyStatement) allowsInvoke(principal, sourceARN string) bool {
	if s.Effect != "Allow" || !matches(s.Action, invokeAction) {
		return false
	}
	p, ok := s.Principal.(map[string]interface{})
	if !ok || p["Service"] != principal {
		return false
	}
	return s.Condition["ArnLike"]["AWS:SourceArn"] == sourceARN
}

// matches reports whether v is s or a list that contains s.
func matches(v interface{}, s string) bool {
	switch val := v.(type) {
	case string:
		return val == s
	case []interface{}:
		for _, item := range val {
			if item == s {
				return true
			}
		}
	}
	return false
}

func toFunction(out *lambda.FunctionConfiguration) *Function {
	fn := &Function{
		Name:      aws.StringValue(out.FunctionName),
		ARN:       aws.StringValue(out.FunctionArn),
		Version:   aws.StringValue(out.Version),
		Role:      aws.StringValue(out.Role),
		KMSKeyARN: aws.StringValue(out.KMSKeyArn),
	}
	if out.Environment != nil {
		fn.Environment = aws.StringValueMap(out.Environment.Variables)
	}
	return fn
}

func isNotFoundErr(err error) bool {
	aerr, ok := err.(awserr.Error)
	return ok && aerr.Code() == lambda.ErrCodeResourceNotFoundException
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package deploy

import (
	"context"
	"fmt"

	"github.com/aws/lambdeploy/internal/pkg/async"
	"github.com/aws/lambdeploy/internal/pkg/aws/lambda"
	"github.com/aws/lambdeploy/internal/pkg/descriptor"
)

const (
	apiGatewayPrincipal = "apigateway.amazonaws.com"
	statementIDPrefix   = "web-api-access-"
)

// hasAPI returns true if the run reconciles a REST API.
func (s *State) hasAPI(in Input) bool {
	return in.APIID != "" && s.Descriptor != nil
}

// resolveCaller records the partition and account that the function lives in.
func (p *Pipeline) resolveCaller(s *State) error {
	if s.Account != "" {
		return nil
	}
	caller, err := p.identity.Get()
	if err != nil {
		return err
	}
	s.Partition, s.Account = caller.Partition, caller.Account
	return nil
}

func (p *Pipeline) grantInvokePermission(ctx context.Context, in Input, s *State) error {
	if !s.hasAPI(in) {
		return nil
	}
	if err := p.resolveCaller(s); err != nil {
		return err
	}
	if err := p.allowInvoke(ctx, lambda.Permission{
		FunctionName: in.FunctionName,
		Qualifier:    s.Alias,
		Principal:    apiGatewayPrincipal,
		SourceARN:    fmt.Sprintf("arn:%s:execute-api:%s:%s:%s/*/*/*", s.Partition, in.Region, s.Account, in.APIID),
	}); err != nil {
		return err
	}

	var named []string
	for _, name := range s.Descriptor.SortedAuthorizerNames() {
		if s.Descriptor.Authorizers[name].LambdaName != "" {
			named = append(named, name)
		}
	}
	_, err := async.Sequence(ctx, named, func(ctx context.Context, name string) (struct{}, error) {
		a := s.Descriptor.Authorizers[name]
		return struct{}{}, p.allowInvoke(ctx, lambda.Permission{
			FunctionName: a.LambdaName,
			Qualifier:    authorizerQualifier(a, s.Alias),
			Principal:    apiGatewayPrincipal,
			SourceARN:    fmt.Sprintf("arn:%s:execute-api:%s:%s:%s/authorizers/*", s.Partition, in.Region, s.Account, in.APIID),
		})
	})
	return err
}

// allowInvoke adds the permission unless an equivalent statement exists.
func (p *Pipeline) allowInvoke(ctx context.Context, perm lambda.Permission) error {
	exists, err := p.function.HasInvokePermission(ctx, perm)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	perm.StatementID = statementIDPrefix + p.newID()
	return exec(ctx, p, "lambda.AddPermission", functionRetryable, func(ctx context.Context) error {
		return p.function.AddInvokePermission(ctx, perm)
	})
}

// authorizerQualifier returns the version of an authorizer function that the API invokes.
func authorizerQualifier(a descriptor.Authorizer, stageAlias string) string {
	if a.LambdaVersion == nil {
		return ""
	}
	if a.LambdaVersion.FromStage {
		return stageAlias
	}
	return a.LambdaVersion.Alias
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package deploy

import (
	"context"

	"github.com/aws/lambdeploy/internal/pkg/async"
	"github.com/aws/lambdeploy/internal/pkg/aws/apigateway"
	"github.com/aws/lambdeploy/internal/pkg/descriptor"
)

// registerAuthorizers replaces the authorizers of the REST API with the declared ones.
func (p *Pipeline) registerAuthorizers(ctx context.Context, in Input, s *State) error {
	existing, err := call(ctx, p, "apigateway.GetAuthorizers", routingRetryable, func(ctx context.Context) ([]apigateway.Authorizer, error) {
		return p.routing.Authorizers(ctx, in.APIID)
	})
	if err != nil {
		return err
	}
	if _, err := async.Sequence(ctx, existing, func(ctx context.Context, a apigateway.Authorizer) (string, error) {
		return a.ID, exec(ctx, p, "apigateway.DeleteAuthorizer", routingRetryable, func(ctx context.Context) error {
			return p.routing.DeleteAuthorizer(ctx, in.APIID, a.ID)
		})
	}); err != nil {
		return err
	}

	names := s.Descriptor.SortedAuthorizerNames()
	handles, err := async.SequenceHandles(ctx, names, func(ctx context.Context, name string) *async.Handle[string] {
		cfg := authorizerConfig(name, s.Descriptor.Authorizers[name], in.Region, s)
		return async.Go(ctx, func(ctx context.Context) (string, error) {
			return call(ctx, p, "apigateway.CreateAuthorizer", routingRetryable, func(ctx context.Context) (string, error) {
				return p.routing.CreateAuthorizer(ctx, in.APIID, cfg)
			})
		})
	})
	if err != nil {
		return err
	}
	for i, h := range handles {
		id, _ := h.Wait()
		s.AuthorizerIDs[names[i]] = id
	}
	return nil
}

// authorizerConfig converts a declared authorizer to its API Gateway configuration.
func authorizerConfig(name string, a descriptor.Authorizer, region string, s *State) apigateway.Authorizer {
	header := a.HeaderName
	if header == "" {
		header = defaultIdentityHeader
	}
	identitySource := a.IdentitySource
	if identitySource == "" {
		identitySource = identityHeaderSourcePrefix + header
	}
	cfg := apigateway.Authorizer{
		Name:                 name,
		IdentitySource:       identitySource,
		ValidationExpression: a.ValidationExpression,
		ResultTTL:            a.ResultTTL,
	}
	if a.IsCognito() {
		cfg.Type = descriptor.AuthorizationTypeCognito
		cfg.ProviderARNs = a.ProviderARNs
		return cfg
	}
	cfg.Type = a.Type
	if cfg.Type == "" {
		cfg.Type = authorizerTypeToken
	}
	fnARN := a.LambdaARN
	if fnARN == "" {
		fnARN = functionARN(s.Partition, region, s.Account, a.LambdaName)
		switch {
		case a.LambdaVersion == nil:
		case a.LambdaVersion.FromStage:
			fnARN += ":${stageVariables." + stageVersionVariable + "}"
		case a.LambdaVersion.Alias != "":
			fnARN += ":" + a.LambdaVersion.Alias
		}
	}
	cfg.URI = invocationURI(s.Partition, region, fnARN)
	return cfg
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package deploy

import (
	"context"

	"github.com/aws/lambdeploy/internal/pkg/aws/apigateway"
)

func (p *Pipeline) publishDeploymentStage(ctx context.Context, in Input, s *State) error {
	if !s.hasAPI(in) {
		return nil
	}
	stage := in.stage()
	id, err := call(ctx, p, "apigateway.CreateDeployment", routingRetryable, func(ctx context.Context) (string, error) {
		return p.routing.CreateDeployment(ctx, in.APIID, stage, map[string]string{
			stageVersionVariable: s.Alias,
		})
	})
	if err != nil {
		return err
	}
	s.DeploymentID = id
	s.URL = apigateway.InvokeURL(in.APIID, in.Region, stage)
	return nil
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package deploy

import (
	"errors"
	"fmt"
)

// ErrStageFailed is returned when a stage of a pipeline run fails.
type ErrStageFailed struct {
	Stage string
	Err   error
}

func (e *ErrStageFailed) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Unwrap returns the failure of the stage.
func (e *ErrStageFailed) Unwrap() error {
	return e.Err
}

// RecommendActions returns the recommendation of the underlying failure, if any.
func (e *ErrStageFailed) RecommendActions() string {
	var recommender interface {
		RecommendActions() string
	}
	if errors.As(e.Err, &recommender) {
		return recommender.RecommendActions()
	}
	if e.Stage == StagePackage || e.Stage == StageUpload {
		return ""
	}
	return "Remote changes made before the failure were kept. Run the update again once the problem is fixed."
}

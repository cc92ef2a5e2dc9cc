// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sessions

import (
	"fmt"
	"strings"

	"github.com/aws/lambdeploy/internal/pkg/term/color"
)

type errMissingRegion struct{}

// Implements error interface.
func (e *errMissingRegion) Error() string {
	return "missing region configuration"
}

// RecommendActions returns recommended actions to be taken after the error.
// Implements main.actionRecommender interface.
func (e *errMissingRegion) RecommendActions() string {
	return fmt.Sprintf(`It looks like your AWS region configuration is missing.
- Set the region of the function in lambdeploy.json.
- Alternatively, you can run %s to set the environment variable.`, color.HighlightCode("export AWS_REGION=<function region>"))
}

type errCredRetrieval struct {
	profile   string
	parentErr error
}

// Implements error interface.
func (e *errCredRetrieval) Error() string {
	return e.parentErr.Error()
}

func (e *errCredRetrieval) Unwrap() error {
	return e.parentErr
}

// RecommendActions returns recommended actions to be taken after the error.
// Implements main.actionRecommender interface.
func (e *errCredRetrieval) RecommendActions() string {
	notice := "It looks like your credential settings are misconfigured or missing"
	if e.profile != "" {
		notice = fmt.Sprintf("It looks like your profile [%s] is misconfigured or missing", e.profile)
	}
	return fmt.Sprintf(`%s:
https://docs.aws.amazon.com/sdk-for-go/v1/developer-guide/configuring-sdk.html#specifying-credentials
- We recommend including your credentials in the shared credentials file.
- Alternatively, you can also set credentials through %s and %s.`,
		notice, color.HighlightCode("AWS_ACCESS_KEY_ID"), color.HighlightCode("AWS_SECRET_ACCESS_KEY"))
}

func isCredRetrievalErr(err error) bool {
	return strings.Contains(err.Error(), "context deadline exceeded") || strings.Contains(err.Error(), "NoCredentialProviders")
}

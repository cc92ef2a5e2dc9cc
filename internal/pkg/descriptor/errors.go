// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package descriptor

import (
	"fmt"
	"strings"

	"github.com/aws/lambdeploy/internal/pkg/term/color"
	"github.com/dustin/go-humanize/english"
)

// Rule identifies the check that a descriptor failed.
type Rule string

// Rules checked by the validator, in the order they are applied.
const (
	RuleNoRoutes                    Rule = "no-routes"
	RuleSuccessHeaders              Rule = "success-headers"
	RuleErrorHeaders                Rule = "error-headers"
	RuleUndefinedCustomAuthorizer   Rule = "undefined-custom-authorizer"
	RuleUndefinedCognitoAuthorizer  Rule = "undefined-cognito-authorizer"
	RuleUnsupportedAuthorization    Rule = "unsupported-authorization-type"
	RuleCustomAuthorizerConflict    Rule = "custom-authorizer-conflict"
	RuleCognitoAuthorizerConflict   Rule = "cognito-authorizer-conflict"
	RuleCredentialsConflict         Rule = "credentials-conflict"
	RuleScopesRequireCognito        Rule = "scopes-require-cognito"
	RuleScopesNotList               Rule = "scopes-not-list"
	RuleAuthorizerMissingIdentity   Rule = "authorizer-missing-identity"
	RuleAuthorizerAmbiguousIdentity Rule = "authorizer-ambiguous-identity"
	RuleAuthorizerVersionShape      Rule = "authorizer-version-shape"
	RuleAuthorizerVersionWithARN    Rule = "authorizer-version-with-arn"
)

// ErrInvalidDescriptor is a rule violation in a descriptor.
type ErrInvalidDescriptor struct {
	Module string
	// Route and Method are set for violations of a method's configuration.
	Route  string
	Method string
	// Authorizer is set for violations of an authorizer's configuration.
	Authorizer string
	Rule       Rule
	Detail     string
}

func (e *ErrInvalidDescriptor) Error() string {
	switch {
	case e.Authorizer != "":
		return fmt.Sprintf("%s authorizer %s %s", e.Module, e.Authorizer, e.Detail)
	case e.Method != "":
		return fmt.Sprintf("%s %s %s %s", e.Module, e.Method, e.Route, e.Detail)
	default:
		return fmt.Sprintf("%s %s", e.Module, e.Detail)
	}
}

// ErrInvalidDescriptors holds every rule violation of a descriptor.
type ErrInvalidDescriptors struct {
	Errors []*ErrInvalidDescriptor
}

func (e *ErrInvalidDescriptors) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = "- " + err.Error()
	}
	return fmt.Sprintf("found %s in the API descriptor:\n%s",
		english.Plural(len(e.Errors), "problem", ""), strings.Join(msgs, "\n"))
}

// Unwrap returns the individual violations.
func (e *ErrInvalidDescriptors) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}

// ErrUnsupportedVersion is returned when the descriptor was produced for a different version of lambdeploy.
type ErrUnsupportedVersion struct {
	Module  string
	Version int
}

func (e *ErrUnsupportedVersion) Error() string {
	if e.Version < SupportedVersion {
		return fmt.Sprintf("%s uses API descriptor version %d which is too old, lambdeploy requires version %d", e.Module, e.Version, SupportedVersion)
	}
	return fmt.Sprintf("%s uses API descriptor version %d which is too new, this lambdeploy supports version %d", e.Module, e.Version, SupportedVersion)
}

// RecommendActions returns recommended actions to be taken after the error.
func (e *ErrUnsupportedVersion) RecommendActions() string {
	if e.Version < SupportedVersion {
		return "Upgrade the API builder library that your application depends on and package it again."
	}
	return fmt.Sprintf("Upgrade your lambdeploy installation, then run %s again.", color.HighlightCode("lambdeploy update"))
}

// ErrModuleLoad is returned when the exports of a module cannot be read.
type ErrModuleLoad struct {
	Module string
	Err    error
}

func (e *ErrModuleLoad) Error() string {
	return fmt.Sprintf("cannot load ./%s after clean installation: %v", e.Module, e.Err)
}

func (e *ErrModuleLoad) Unwrap() error {
	return e.Err
}

// RecommendActions returns recommended actions to be taken after the error.
func (e *ErrModuleLoad) RecommendActions() string {
	return "Check your dependencies: the module could not be loaded from the packaged application."
}

// ErrInvalidExports is returned when the exports file of a module is malformed.
type ErrInvalidExports struct {
	Module string
	Path   string
	Err    error
}

func (e *ErrInvalidExports) Error() string {
	return fmt.Sprintf("exports file %s of %s is malformed: %v", e.Path, e.Module, e.Err)
}

func (e *ErrInvalidExports) Unwrap() error {
	return e.Err
}

// ErrMissingExport is returned when a module loads but does not export an expected function.
type ErrMissingExport struct {
	Module string
	Export string
}

func (e *ErrMissingExport) Error() string {
	return fmt.Sprintf("%s does not export %s", e.Module, e.Export)
}

// ErrMissingManifest is returned when the project directory has no package manifest.
type ErrMissingManifest struct {
	Dir string
}

func (e *ErrMissingManifest) Error() string {
	return fmt.Sprintf("project directory %s does not contain %s", e.Dir, ManifestFile)
}

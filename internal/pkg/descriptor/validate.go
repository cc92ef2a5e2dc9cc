// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package descriptor

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// ValidatePackage checks that the application in dir can be deployed for target before anything is changed remotely.
// It returns dir unchanged on success.
func ValidatePackage(fs afero.Fs, dir string, target Target) (string, error) {
	app, err := LoadPackage(fs, dir, target)
	if err != nil {
		return "", err
	}
	routed, ok := app.(*RoutedApplication)
	if !ok {
		return dir, nil
	}
	d, err := routed.Descriptor()
	if err != nil {
		return "", err
	}
	if err := Validate(routed.Module, d); err != nil {
		return "", err
	}
	return dir, nil
}

// LoadPackage loads the target's module from the project in dir after checking that the project has a manifest.
func LoadPackage(fs afero.Fs, dir string, target Target) (Application, error) {
	exists, err := afero.Exists(fs, filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("check %s in %s: %w", ManifestFile, dir, err)
	}
	if !exists {
		return nil, &ErrMissingManifest{Dir: dir}
	}
	return NewLoader(fs).Load(dir, target)
}

// Validate returns the first problem of the descriptor of module.
// The version is checked first, then the routes and methods in sorted order, then the authorizers.
func Validate(module string, d *Descriptor) error {
	if err := checkVersion(module, d); err != nil {
		return err
	}
	var first *ErrInvalidDescriptor
	check(module, d, func(err *ErrInvalidDescriptor) bool {
		first = err
		return false
	})
	if first != nil {
		return first
	}
	return nil
}

// ValidateAll returns every rule that the descriptor of module violates.
// A version mismatch is returned on its own since the other rules are specific to the supported version.
func ValidateAll(module string, d *Descriptor) error {
	if err := checkVersion(module, d); err != nil {
		return err
	}
	var violations []*ErrInvalidDescriptor
	check(module, d, func(err *ErrInvalidDescriptor) bool {
		violations = append(violations, err)
		return true
	})
	if len(violations) == 0 {
		return nil
	}
	return &ErrInvalidDescriptors{Errors: violations}
}

func checkVersion(module string, d *Descriptor) error {
	if d.Version != SupportedVersion {
		return &ErrUnsupportedVersion{Module: module, Version: d.Version}
	}
	return nil
}

// check passes violations to report until report returns false.
func check(module string, d *Descriptor, report func(*ErrInvalidDescriptor) bool) {
	if len(d.Routes) == 0 {
		report(&ErrInvalidDescriptor{Module: module, Rule: RuleNoRoutes, Detail: "does not configure any API methods"})
		return
	}
	for _, route := range d.SortedRoutes() {
		for _, verb := range route.Methods.SortedVerbs() {
			for _, v := range checkMethod(d, route.Methods[verb]) {
				v.Module, v.Route, v.Method = module, route.Path, verb
				if !report(v) {
					return
				}
			}
		}
	}
	for _, name := range d.SortedAuthorizerNames() {
		for _, v := range checkAuthorizer(d.Authorizers[name]) {
			v.Module, v.Authorizer = module, name
			if !report(v) {
				return
			}
		}
	}
}

func checkMethod(d *Descriptor, cfg MethodConfig) []*ErrInvalidDescriptor {
	var out []*ErrInvalidDescriptor
	add := func(rule Rule, format string, args ...interface{}) {
		out = append(out, &ErrInvalidDescriptor{Rule: rule, Detail: fmt.Sprintf(format, args...)})
	}
	if cfg.Success != nil && cfg.Success.Headers != nil && cfg.Success.Headers.Empty() {
		add(RuleSuccessHeaders, "requests custom headers but does not enumerate any headers")
	}
	if cfg.Error != nil && cfg.Error.Headers != nil && cfg.Error.Headers.Empty() {
		add(RuleErrorHeaders, "error template requests custom headers but does not enumerate any headers")
	}
	if cfg.CustomAuthorizer != "" {
		if _, ok := d.Authorizers[cfg.CustomAuthorizer]; !ok {
			add(RuleUndefinedCustomAuthorizer, "requests an undefined custom authorizer %s", cfg.CustomAuthorizer)
		}
	}
	if cfg.CognitoAuthorizer != "" {
		if _, ok := d.Authorizers[cfg.CognitoAuthorizer]; !ok {
			add(RuleUndefinedCognitoAuthorizer, "requests an undefined cognito authorizer %s", cfg.CognitoAuthorizer)
		}
	}
	authType := cfg.AuthorizationType
	if authType != "" && !isSupportedAuthorizationType(authType) {
		add(RuleUnsupportedAuthorization, "authorization type %s is not supported", authType)
	}
	if authType != "" && authType != AuthorizationTypeCustom && cfg.CustomAuthorizer != "" {
		add(RuleCustomAuthorizerConflict, "authorization type %s is incompatible with custom authorizers", authType)
	}
	if authType != "" && authType != AuthorizationTypeCognito && cfg.CognitoAuthorizer != "" {
		add(RuleCognitoAuthorizerConflict, "authorization type %s is incompatible with cognito authorizers", authType)
	}
	if authType != "" && authType != AuthorizationTypeIAM && cfg.InvokeWithCredentials != nil && cfg.InvokeWithCredentials.Enabled {
		add(RuleCredentialsConflict, "authorization type %s is incompatible with invokeWithCredentials", authType)
	}
	if cfg.AuthorizationScopes != nil {
		if cfg.CognitoAuthorizer == "" {
			add(RuleScopesRequireCognito, "authorizationScopes requires a cognitoAuthorizer")
		}
		if cfg.AuthorizationScopes.notList {
			add(RuleScopesNotList, "authorizationScopes must be an array")
		}
	}
	return out
}

func checkAuthorizer(a Authorizer) []*ErrInvalidDescriptor {
	var out []*ErrInvalidDescriptor
	add := func(rule Rule, detail string) {
		out = append(out, &ErrInvalidDescriptor{Rule: rule, Detail: detail})
	}
	if a.LambdaName == "" && a.LambdaARN == "" && !a.IsCognito() {
		add(RuleAuthorizerMissingIdentity, "requires either lambdaName or lambdaArn")
	}
	if a.LambdaName != "" && a.LambdaARN != "" {
		add(RuleAuthorizerAmbiguousIdentity, "is ambiguous - both lambdaName and lambdaArn are defined")
	}
	if a.LambdaVersion != nil && a.LambdaVersion.invalid != "" {
		add(RuleAuthorizerVersionShape, "lambdaVersion must be either string or true")
	}
	if a.LambdaVersion.IsSet() && a.LambdaARN != "" {
		add(RuleAuthorizerVersionWithARN, "is ambiguous - cannot use lambdaVersion with lambdaArn")
	}
	return out
}

func isSupportedAuthorizationType(t string) bool {
	for _, supported := range supportedAuthorizationTypes {
		if t == supported {
			return true
		}
	}
	return false
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package descriptor loads and validates the API description exported by a packaged application.
package descriptor

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only descriptor version that lambdeploy understands.
const SupportedVersion = 4

// Authorization types accepted by API Gateway methods.
const (
	AuthorizationTypeIAM     = "AWS_IAM"
	AuthorizationTypeNone    = "NONE"
	AuthorizationTypeCustom  = "CUSTOM"
	AuthorizationTypeCognito = "COGNITO_USER_POOLS"
)

var supportedAuthorizationTypes = []string{
	AuthorizationTypeIAM,
	AuthorizationTypeNone,
	AuthorizationTypeCustom,
	AuthorizationTypeCognito,
}

// Descriptor describes the routes, methods and authorizers of an application's API.
type Descriptor struct {
	Version          int                   `yaml:"version"`
	Routes           map[string]Methods    `yaml:"routes"`
	Authorizers      map[string]Authorizer `yaml:"authorizers"`
	CorsHandlers     *Cors                 `yaml:"corsHandlers"`
	BinaryMediaTypes []string              `yaml:"binaryMediaTypes"`
}

// Methods maps an HTTP verb to the configuration of the method.
type Methods map[string]MethodConfig

// MethodConfig is the configuration of a single route and HTTP verb.
type MethodConfig struct {
	Success               *Response    `yaml:"success"`
	Error                 *Response    `yaml:"error"`
	AuthorizationType     string       `yaml:"authorizationType"`
	CustomAuthorizer      string       `yaml:"customAuthorizer"`
	CognitoAuthorizer     string       `yaml:"cognitoAuthorizer"`
	AuthorizationScopes   *Scopes      `yaml:"authorizationScopes"`
	InvokeWithCredentials *Credentials `yaml:"invokeWithCredentials"`
	APIKeyRequired        bool         `yaml:"apiKeyRequired"`
}

// Response shapes a success or error response of a method.
type Response struct {
	Code        int      `yaml:"code"`
	ContentType string   `yaml:"contentType"`
	Headers     *Headers `yaml:"headers"`
}

// Headers are custom response headers, either a list of names or a map of names to default values.
type Headers struct {
	Names    []string
	Defaults map[string]string
}

// UnmarshalYAML accepts a list of header names or a map of header names to default values.
func (h *Headers) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		return value.Decode(&h.Names)
	case yaml.MappingNode:
		return value.Decode(&h.Defaults)
	default:
		return fmt.Errorf("line %d: headers must be a list of names or a map of default values", value.Line)
	}
}

// Empty returns true if no header is enumerated.
func (h *Headers) Empty() bool {
	return len(h.Names) == 0 && len(h.Defaults) == 0
}

// List returns the sorted names of the headers.
func (h *Headers) List() []string {
	names := append([]string(nil), h.Names...)
	for name := range h.Defaults {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scopes are the OAuth scopes required by a method.
type Scopes struct {
	Values []string
	// notList is set when the scopes were not written as a list.
	notList bool
}

// UnmarshalYAML records whether the scopes were written as a list.
func (s *Scopes) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		s.notList = true
		return nil
	}
	return value.Decode(&s.Values)
}

// Credentials configures the integration to call the function with the caller's credentials or a role.
type Credentials struct {
	Enabled bool
	RoleARN string
}

// UnmarshalYAML accepts a boolean or a role ARN.
func (c *Credentials) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: invokeWithCredentials must be a boolean or a role ARN", value.Line)
	}
	if value.Tag == "!!bool" {
		b, err := strconv.ParseBool(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: parse invokeWithCredentials: %w", value.Line, err)
		}
		c.Enabled = b
		return nil
	}
	c.Enabled = value.Value != ""
	c.RoleARN = value.Value
	return nil
}

// Cors is the corsHandlers setting: true/false, or an allowed origin.
type Cors struct {
	Disabled bool
	Origin   string
}

// UnmarshalYAML accepts a boolean or an origin.
func (c *Cors) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: corsHandlers must be a boolean or an origin", value.Line)
	}
	if value.Tag == "!!bool" {
		b, err := strconv.ParseBool(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: parse corsHandlers: %w", value.Line, err)
		}
		c.Disabled = !b
		return nil
	}
	c.Origin = value.Value
	return nil
}

// Authorizer configures a custom (Lambda) or Cognito user pool authorizer.
type Authorizer struct {
	LambdaName           string        `yaml:"lambdaName"`
	LambdaARN            string        `yaml:"lambdaArn"`
	LambdaVersion        *VersionToken `yaml:"lambdaVersion"`
	ProviderARNs         []string      `yaml:"providerARNs"`
	Type                 string        `yaml:"type"`
	HeaderName           string        `yaml:"headerName"`
	IdentitySource       string        `yaml:"identitySource"`
	ValidationExpression string        `yaml:"validationExpression"`
	ResultTTL            *int64        `yaml:"resultTtl"`
}

// IsCognito returns true if the authorizer is backed by Cognito user pools instead of a function.
func (a Authorizer) IsCognito() bool {
	return len(a.ProviderARNs) > 0
}

// VersionToken selects which version of an authorizer function is invoked.
// It is either an alias or true, in which case the API stage's function version is used.
type VersionToken struct {
	Alias     string
	FromStage bool
	// invalid holds the YAML tag of a value that is neither a string nor true.
	invalid string
}

// UnmarshalYAML accepts a string or a boolean, and records anything else for validation.
func (v *VersionToken) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		v.invalid = value.Tag
		return nil
	}
	switch value.Tag {
	case "!!str":
		v.Alias = value.Value
	case "!!bool":
		b, err := strconv.ParseBool(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: parse lambdaVersion: %w", value.Line, err)
		}
		v.FromStage = b
	default:
		v.invalid = value.Tag
	}
	return nil
}

// IsSet returns true if the token asks for a specific version.
func (v *VersionToken) IsSet() bool {
	return v != nil && (v.Alias != "" || v.FromStage || v.invalid != "")
}

// Route is a route of the descriptor with its methods.
type Route struct {
	Path    string
	Methods Methods
}

// SortedRoutes returns the routes sorted by depth and then by path, so that parents come before their children.
func (d *Descriptor) SortedRoutes() []Route {
	routes := make([]Route, 0, len(d.Routes))
	for path, methods := range d.Routes {
		routes = append(routes, Route{Path: NormalizePath(path), Methods: methods})
	}
	sort.Slice(routes, func(i, j int) bool {
		di, dj := depth(routes[i].Path), depth(routes[j].Path)
		if di != dj {
			return di < dj
		}
		return routes[i].Path < routes[j].Path
	})
	return routes
}

// SortedVerbs returns the HTTP verbs of the methods in alphabetical order.
func (m Methods) SortedVerbs() []string {
	verbs := make([]string, 0, len(m))
	for verb := range m {
		verbs = append(verbs, verb)
	}
	sort.Strings(verbs)
	return verbs
}

// SortedAuthorizerNames returns the names of the authorizers in alphabetical order.
func (d *Descriptor) SortedAuthorizerNames() []string {
	names := make([]string, 0, len(d.Authorizers))
	for name := range d.Authorizers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CorsEnabled returns true unless CORS handlers were explicitly turned off.
func (d *Descriptor) CorsEnabled() bool {
	return d.CorsHandlers == nil || !d.CorsHandlers.Disabled
}

// NormalizePath returns the route path with a single leading slash and no trailing slash.
func NormalizePath(p string) string {
	return "/" + strings.Trim(p, "/")
}

func depth(p string) int {
	if p == "/" {
		return 0
	}
	return strings.Count(p, "/")
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package deploy

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/lambdeploy/internal/pkg/async"
	"github.com/aws/lambdeploy/internal/pkg/aws/apigateway"
	"github.com/aws/lambdeploy/internal/pkg/descriptor"
)

const (
	rootPath = "/"

	integrationTypeProxy = "AWS_PROXY"
	integrationTypeMock  = "MOCK"
	authorizerTypeToken  = "TOKEN"

	defaultStatusCode          = 200
	defaultIdentityHeader      = "Authorization"
	identityHeaderSourcePrefix = "method.request.header."
	stageVersionVariable       = "lambdaVersion"

	corsOptionsMethod = "OPTIONS"
	corsAllowHeaders  = "'Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token'"
	corsAllowOrigin   = "'*'"
)

const (
	headerAllowOrigin  = "Access-Control-Allow-Origin"
	headerAllowHeaders = "Access-Control-Allow-Headers"
	headerAllowMethods = "Access-Control-Allow-Methods"
)

// routeReconciler rebuilds the declared routes of a REST API.
type routeReconciler struct {
	p     *Pipeline
	in    Input
	state *State
	// remote are the resources that existed before the run and were not deleted since.
	remote map[string]apigateway.Resource
}

// reconcileRoutingResources replaces the routes and authorizers of the REST API with the declared ones.
// Methods that may reference an authorizer are removed before the authorizers are replaced.
func (p *Pipeline) reconcileRoutingResources(ctx context.Context, in Input, s *State) error {
	if !s.hasAPI(in) {
		return nil
	}
	if err := p.resolveCaller(s); err != nil {
		return err
	}
	resources, err := call(ctx, p, "apigateway.GetResources", routingRetryable, func(ctx context.Context) ([]apigateway.Resource, error) {
		return p.routing.Resources(ctx, in.APIID)
	})
	if err != nil {
		return err
	}
	r := &routeReconciler{
		p:      p,
		in:     in,
		state:  s,
		remote: make(map[string]apigateway.Resource, len(resources)),
	}
	for _, res := range resources {
		r.remote[res.Path] = res
	}
	root, ok := r.remote[rootPath]
	if !ok {
		return fmt.Errorf("REST API %s has no root resource", in.APIID)
	}
	s.ResourceIDs[rootPath] = root.ID

	if err := r.removeExisting(ctx); err != nil {
		return err
	}
	if err := p.registerAuthorizers(ctx, in, s); err != nil {
		return err
	}
	// Routes are rebuilt one at a time, parents before children.
	_, err = async.Sequence(ctx, s.Descriptor.SortedRoutes(), func(ctx context.Context, route descriptor.Route) (string, error) {
		return r.rebuild(ctx, route)
	})
	return err
}

// rebuild creates the resource of the route with its methods.
func (r *routeReconciler) rebuild(ctx context.Context, route descriptor.Route) (string, error) {
	id, err := r.ensureResource(ctx, route.Path)
	if err != nil {
		return "", err
	}
	_, err = async.Sequence(ctx, route.Methods.SortedVerbs(), func(ctx context.Context, verb string) (string, error) {
		return verb, r.putMethod(ctx, id, verb, route.Methods[verb])
	})
	if err != nil {
		return "", err
	}
	if r.corsEnabled() {
		if _, ok := route.Methods[corsOptionsMethod]; !ok {
			if err := r.putCorsMethod(ctx, id, route.Methods.SortedVerbs()); err != nil {
				return "", err
			}
		}
	}
	return id, nil
}

// removeExisting leaves no remote method behind, so that no method references an authorizer.
// Declared and stale resources are deleted. The root and the undeclared ancestors of declared routes
// are kept without their methods.
// Requests to the API fail until the routes are rebuilt.
func (r *routeReconciler) removeExisting(ctx context.Context) error {
	declared := make(map[string]bool)
	for _, route := range r.state.Descriptor.SortedRoutes() {
		declared[route.Path] = true
	}
	paths := make([]string, 0, len(r.remote))
	for p := range r.remote {
		paths = append(paths, p)
	}
	// Parents sort before their children.
	sort.Strings(paths)
	_, err := async.Sequence(ctx, paths, func(ctx context.Context, routePath string) (string, error) {
		res, ok := r.remote[routePath]
		if !ok {
			// Deleted with its parent.
			return routePath, nil
		}
		if routePath == rootPath || (!declared[routePath] && isAncestor(routePath, declared)) {
			return routePath, r.deleteMethods(ctx, res)
		}
		return routePath, r.deleteResource(ctx, res)
	})
	return err
}

func (r *routeReconciler) deleteMethods(ctx context.Context, res apigateway.Resource) error {
	_, err := async.Sequence(ctx, res.Methods, func(ctx context.Context, verb string) (string, error) {
		return verb, exec(ctx, r.p, "apigateway.DeleteMethod", routingRetryable, func(ctx context.Context) error {
			return r.p.routing.DeleteMethod(ctx, r.in.APIID, res.ID, verb)
		})
	})
	return err
}

func (r *routeReconciler) deleteResource(ctx context.Context, res apigateway.Resource) error {
	if err := exec(ctx, r.p, "apigateway.DeleteResource", routingRetryable, func(ctx context.Context) error {
		return r.p.routing.DeleteResource(ctx, r.in.APIID, res.ID)
	}); err != nil {
		return err
	}
	// Deleting a resource deletes its children.
	for p := range r.remote {
		if p == res.Path || strings.HasPrefix(p, res.Path+"/") {
			delete(r.remote, p)
		}
	}
	return nil
}

// isAncestor reports whether routePath is a parent of one of the declared paths.
func isAncestor(routePath string, declared map[string]bool) bool {
	for p := range declared {
		if strings.HasPrefix(p, routePath+"/") {
			return true
		}
	}
	return false
}

// ensureResource returns the ID of the resource for routePath, creating it and its missing ancestors.
func (r *routeReconciler) ensureResource(ctx context.Context, routePath string) (string, error) {
	if id, ok := r.state.ResourceIDs[routePath]; ok {
		return id, nil
	}
	if res, ok := r.remote[routePath]; ok {
		r.state.ResourceIDs[routePath] = res.ID
		return res.ID, nil
	}
	parentID, err := r.ensureResource(ctx, path.Dir(routePath))
	if err != nil {
		return "", err
	}
	res, err := call(ctx, r.p, "apigateway.CreateResource", routingRetryable, func(ctx context.Context) (apigateway.Resource, error) {
		return r.p.routing.CreateResource(ctx, r.in.APIID, parentID, path.Base(routePath))
	})
	if err != nil {
		return "", err
	}
	r.state.ResourceIDs[routePath] = res.ID
	return res.ID, nil
}

// putMethod creates the method, its response, its integration and the integration response, in that order.
func (r *routeReconciler) putMethod(ctx context.Context, resourceID, verb string, cfg descriptor.MethodConfig) error {
	apiID, s := r.in.APIID, r.state
	authType, authorizerID := authorization(cfg, s.AuthorizerIDs)
	statusCode := strconv.Itoa(defaultStatusCode)
	if cfg.Success != nil && cfg.Success.Code != 0 {
		statusCode = strconv.Itoa(cfg.Success.Code)
	}
	var headers []string
	if cfg.Success != nil && cfg.Success.Headers != nil {
		headers = cfg.Success.Headers.List()
	}
	if r.corsEnabled() {
		headers = append(headers, headerAllowOrigin)
	}
	var credentials string
	if cfg.InvokeWithCredentials != nil && cfg.InvokeWithCredentials.Enabled {
		credentials = cfg.InvokeWithCredentials.RoleARN
		if credentials == "" {
			credentials = fmt.Sprintf("arn:%s:iam::*:user/*", s.Partition)
		}
	}
	var scopes []string
	if cfg.AuthorizationScopes != nil {
		scopes = cfg.AuthorizationScopes.Values
	}

	calls := []struct {
		name string
		fn   func(ctx context.Context) error
	}{
		{"apigateway.PutMethod", func(ctx context.Context) error {
			return r.p.routing.PutMethod(ctx, apiID, resourceID, apigateway.Method{
				HTTPMethod:          verb,
				AuthorizationType:   authType,
				AuthorizerID:        authorizerID,
				AuthorizationScopes: scopes,
				APIKeyRequired:      cfg.APIKeyRequired,
			})
		}},
		{"apigateway.PutMethodResponse", func(ctx context.Context) error {
			return r.p.routing.PutMethodResponse(ctx, apiID, resourceID, apigateway.MethodResponse{
				HTTPMethod: verb,
				StatusCode: statusCode,
				Headers:    headers,
			})
		}},
		{"apigateway.PutIntegration", func(ctx context.Context) error {
			return r.p.routing.PutIntegration(ctx, apiID, resourceID, apigateway.Integration{
				HTTPMethod:  verb,
				Type:        integrationTypeProxy,
				URI:         r.invocationURI(r.functionARN() + ":${stageVariables." + stageVersionVariable + "}"),
				Credentials: credentials,
			})
		}},
		{"apigateway.PutIntegrationResponse", func(ctx context.Context) error {
			return r.p.routing.PutIntegrationResponse(ctx, apiID, resourceID, apigateway.IntegrationResponse{
				HTTPMethod: verb,
				StatusCode: statusCode,
			})
		}},
	}
	for _, c := range calls {
		if err := exec(ctx, r.p, c.name, routingRetryable, c.fn); err != nil {
			return err
		}
	}
	return nil
}

// putCorsMethod answers preflight requests for the verbs of a route without invoking the function.
func (r *routeReconciler) putCorsMethod(ctx context.Context, resourceID string, verbs []string) error {
	apiID := r.in.APIID
	allowed := append(append([]string{}, verbs...), corsOptionsMethod)
	sort.Strings(allowed)
	origin := corsAllowOrigin
	if cors := r.state.Descriptor.CorsHandlers; cors != nil && cors.Origin != "" {
		origin = "'" + cors.Origin + "'"
	}
	statusCode := strconv.Itoa(defaultStatusCode)

	calls := []struct {
		name string
		fn   func(ctx context.Context) error
	}{
		{"apigateway.PutMethod", func(ctx context.Context) error {
			return r.p.routing.PutMethod(ctx, apiID, resourceID, apigateway.Method{
				HTTPMethod:        corsOptionsMethod,
				AuthorizationType: descriptor.AuthorizationTypeNone,
			})
		}},
		{"apigateway.PutMethodResponse", func(ctx context.Context) error {
			return r.p.routing.PutMethodResponse(ctx, apiID, resourceID, apigateway.MethodResponse{
				HTTPMethod: corsOptionsMethod,
				StatusCode: statusCode,
				Headers:    []string{headerAllowHeaders, headerAllowMethods, headerAllowOrigin},
			})
		}},
		{"apigateway.PutIntegration", func(ctx context.Context) error {
			return r.p.routing.PutIntegration(ctx, apiID, resourceID, apigateway.Integration{
				HTTPMethod:       corsOptionsMethod,
				Type:             integrationTypeMock,
				RequestTemplates: map[string]string{"application/json": `{"statusCode": 200}`},
			})
		}},
		{"apigateway.PutIntegrationResponse", func(ctx context.Context) error {
			return r.p.routing.PutIntegrationResponse(ctx, apiID, resourceID, apigateway.IntegrationResponse{
				HTTPMethod: corsOptionsMethod,
				StatusCode: statusCode,
				Headers: map[string]string{
					headerAllowHeaders: corsAllowHeaders,
					headerAllowMethods: "'" + strings.Join(allowed, ",") + "'",
					headerAllowOrigin:  origin,
				},
			})
		}},
	}
	for _, c := range calls {
		if err := exec(ctx, r.p, c.name, routingRetryable, c.fn); err != nil {
			return err
		}
	}
	return nil
}

func (r *routeReconciler) corsEnabled() bool {
	return r.state.Descriptor.CorsEnabled()
}

// functionARN returns the unqualified ARN of the deployed function.
func (r *routeReconciler) functionARN() string {
	return functionARN(r.state.Partition, r.in.Region, r.state.Account, r.in.FunctionName)
}

func (r *routeReconciler) invocationURI(fnARN string) string {
	return invocationURI(r.state.Partition, r.in.Region, fnARN)
}

// authorization returns the authorization type of a method and the ID of its authorizer.
func authorization(cfg descriptor.MethodConfig, authorizerIDs map[string]string) (string, string) {
	switch {
	case cfg.CustomAuthorizer != "":
		return descriptor.AuthorizationTypeCustom, authorizerIDs[cfg.CustomAuthorizer]
	case cfg.CognitoAuthorizer != "":
		return descriptor.AuthorizationTypeCognito, authorizerIDs[cfg.CognitoAuthorizer]
	case cfg.AuthorizationType != "":
		return cfg.AuthorizationType, ""
	case cfg.InvokeWithCredentials != nil && cfg.InvokeWithCredentials.Enabled:
		return descriptor.AuthorizationTypeIAM, ""
	default:
		return descriptor.AuthorizationTypeNone, ""
	}
}

func functionARN(partition, region, account, name string) string {
	return fmt.Sprintf("arn:%s:lambda:%s:%s:function:%s", partition, region, account, name)
}

func invocationURI(partition, region, fnARN string) string {
	return fmt.Sprintf("arn:%s:apigateway:%s:lambda:path/2015-03-31/functions/%s/invocations", partition, region, fnARN)
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package deploy updates a deployed application: its function code and configuration,
// the permissions that let API Gateway invoke it, and the routes of its REST API.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/lambdeploy/internal/pkg/aws/apigateway"
	"github.com/aws/lambdeploy/internal/pkg/aws/identity"
	"github.com/aws/lambdeploy/internal/pkg/aws/lambda"
	"github.com/aws/lambdeploy/internal/pkg/descriptor"
	"github.com/aws/lambdeploy/internal/pkg/term/log"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

const (
	// DefaultAlias is the function alias, and API stage, used when none is requested.
	DefaultAlias = "latest"

	defaultRetryDelay  = 3 * time.Second
	defaultMaxAttempts = 10
)

type packager interface {
	Package(ctx context.Context, sourceDir string) (string, error)
	Dir() string
	Cleanup() error
}

type uploader interface {
	Upload(bucket, key string, data io.Reader) (string, error)
}

type functionClient interface {
	FunctionConfiguration(ctx context.Context, name string) (*lambda.Function, error)
	UpdateFunctionCode(ctx context.Context, name string, code lambda.Code) (*lambda.Function, error)
	UpdateFunctionConfiguration(ctx context.Context, name string, cfg lambda.Configuration) (*lambda.Function, error)
	AddInvokePermission(ctx context.Context, p lambda.Permission) error
	HasInvokePermission(ctx context.Context, p lambda.Permission) (bool, error)
	PublishAlias(ctx context.Context, name, alias, version string) error
}

type routingClient interface {
	Resources(ctx context.Context, apiID string) ([]apigateway.Resource, error)
	CreateResource(ctx context.Context, apiID, parentID, pathPart string) (apigateway.Resource, error)
	DeleteResource(ctx context.Context, apiID, resourceID string) error
	DeleteMethod(ctx context.Context, apiID, resourceID, httpMethod string) error
	PutMethod(ctx context.Context, apiID, resourceID string, method apigateway.Method) error
	PutMethodResponse(ctx context.Context, apiID, resourceID string, r apigateway.MethodResponse) error
	PutIntegration(ctx context.Context, apiID, resourceID string, i apigateway.Integration) error
	PutIntegrationResponse(ctx context.Context, apiID, resourceID string, r apigateway.IntegrationResponse) error
	Authorizers(ctx context.Context, apiID string) ([]apigateway.Authorizer, error)
	DeleteAuthorizer(ctx context.Context, apiID, authorizerID string) error
	CreateAuthorizer(ctx context.Context, apiID string, a apigateway.Authorizer) (string, error)
	CreateDeployment(ctx context.Context, apiID, stage string, variables map[string]string) (string, error)
}

type callerIdentity interface {
	Get() (identity.Caller, error)
}

type workdir interface {
	Enter(dir string) error
	Restore() error
}

// stopper is implemented by loggers that keep drawing on the terminal until stopped.
type stopper interface {
	Stop()
}

// Input is what a pipeline run deploys.
type Input struct {
	// SourceDir is the absolute path of the project.
	SourceDir    string
	FunctionName string
	Region       string
	Target       descriptor.Target
	// Alias is the function alias that the API stage invokes. Defaults to DefaultAlias.
	Alias string
	// Stage is the API stage to deploy. Defaults to the alias.
	Stage string
	// Bucket, when set, receives the archive instead of sending it inline.
	Bucket string
	// APIID is the REST API that fronts the function, if any.
	APIID string
	// Env updates the environment of the function before its code is replaced.
	Env *EnvOptions
}

func (in Input) alias() string {
	if in.Alias == "" {
		return DefaultAlias
	}
	return in.Alias
}

func (in Input) stage() string {
	if in.Stage == "" {
		return in.alias()
	}
	return in.Stage
}

// State is accumulated by the stages of a run.
type State struct {
	ArchivePath string
	ArchiveSize int64
	// ArtifactKey is the object key of the archive when it was uploaded to a bucket.
	ArtifactKey string

	Application descriptor.Application
	// Descriptor is set for routed applications.
	Descriptor *descriptor.Descriptor

	FunctionARN     string
	FunctionVersion string
	Alias           string

	Partition string
	Account   string

	// ResourceIDs maps route paths to the IDs of their API resources.
	ResourceIDs map[string]string
	// AuthorizerIDs maps authorizer names to their IDs.
	AuthorizerIDs map[string]string

	DeploymentID string
	URL          string
}

// PipelineConfig holds the collaborators of a Pipeline.
type PipelineConfig struct {
	Fs       afero.Fs
	Packager packager
	Uploader uploader
	Function functionClient
	Routing  routingClient
	Identity callerIdentity
	Workdir  workdir
	Logger   Logger
	// Diagnostics receives the failure report of a run.
	Diagnostics io.Writer

	RetryDelay  time.Duration
	MaxAttempts int
}

// Pipeline runs the stages of a deployment in order.
type Pipeline struct {
	fs       afero.Fs
	packager packager
	uploader uploader
	function functionClient
	routing  routingClient
	identity callerIdentity
	workdir  workdir
	log      Logger
	diag     *log.Logger

	retryDelay  time.Duration
	maxAttempts int
	newID       func() string
}

// NewPipeline returns a Pipeline. Unset retry settings use the defaults.
func NewPipeline(cfg PipelineConfig) *Pipeline {
	p := &Pipeline{
		fs:          cfg.Fs,
		packager:    cfg.Packager,
		uploader:    cfg.Uploader,
		function:    cfg.Function,
		routing:     cfg.Routing,
		identity:    cfg.Identity,
		workdir:     cfg.Workdir,
		log:         cfg.Logger,
		diag:        log.New(cfg.Diagnostics),
		retryDelay:  cfg.RetryDelay,
		maxAttempts: cfg.MaxAttempts,
		newID:       uuid.NewString,
	}
	if p.log == nil {
		p.log = NullLogger{}
	}
	if p.maxAttempts == 0 {
		p.maxAttempts = defaultMaxAttempts
	}
	if p.retryDelay == 0 {
		p.retryDelay = defaultRetryDelay
	}
	return p
}

// Stage names, in the order they run.
const (
	StagePackage                   = "package"
	StageUpload                    = "upload"
	StageUpdateFunctionCode        = "update function code"
	StageGrantInvokePermission     = "grant invoke permission"
	StageReconcileRoutingResources = "reconcile routing resources"
	StagePublishDeploymentStage    = "publish deployment stage"
	StageCleanup                   = "cleanup"
)

type stage struct {
	name string
	run  func(ctx context.Context, in Input, s *State) error
}

func (p *Pipeline) stages() []stage {
	return []stage{
		{name: StagePackage, run: p.packageApplication},
		{name: StageUpload, run: p.upload},
		{name: StageUpdateFunctionCode, run: p.updateFunctionCode},
		{name: StageGrantInvokePermission, run: p.grantInvokePermission},
		{name: StageReconcileRoutingResources, run: p.reconcileRoutingResources},
		{name: StagePublishDeploymentStage, run: p.publishDeploymentStage},
		{name: StageCleanup, run: func(context.Context, Input, *State) error { return p.cleanup() }},
	}
}

// Run deploys in and returns the accumulated state.
// A failed stage stops the run. Remote changes made by earlier stages are not undone.
func (p *Pipeline) Run(ctx context.Context, in Input) (*State, error) {
	s := &State{
		ResourceIDs:   make(map[string]string),
		AuthorizerIDs: make(map[string]string),
	}
	for _, st := range p.stages() {
		p.log.LogStage(st.name)
		if err := st.run(ctx, in, s); err != nil {
			return s, p.fail(st.name, err)
		}
	}
	if l, ok := p.log.(stopper); ok {
		l.Stop()
	}
	return s, nil
}

// fail releases local resources and returns the failure of stage.
// The failure itself is reported by the caller.
func (p *Pipeline) fail(stage string, err error) error {
	if l, ok := p.log.(stopper); ok {
		l.Stop()
	}
	if cleanupErr := p.cleanup(); cleanupErr != nil {
		p.diag.Warningf("clean up after failure: %v\n", cleanupErr)
	}
	return &ErrStageFailed{Stage: stage, Err: err}
}

// cleanup restores the working directory and removes the temporary package, attempting both.
func (p *Pipeline) cleanup() error {
	var errs []error
	if err := p.workdir.Restore(); err != nil {
		errs = append(errs, fmt.Errorf("restore working directory: %w", err))
	}
	if err := p.packager.Cleanup(); err != nil {
		errs = append(errs, fmt.Errorf("remove temporary package: %w", err))
	}
	return errors.Join(errs...)
}

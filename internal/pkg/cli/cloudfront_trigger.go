// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/lambdeploy/cmd/lambdeploy/template"
	"github.com/aws/lambdeploy/internal/pkg/aws/cloudfront"
	"github.com/aws/lambdeploy/internal/pkg/aws/iam"
	"github.com/aws/lambdeploy/internal/pkg/aws/lambda"
	"github.com/aws/lambdeploy/internal/pkg/aws/sessions"
	"github.com/aws/lambdeploy/internal/pkg/cli/group"
	"github.com/aws/lambdeploy/internal/pkg/config"
	"github.com/aws/lambdeploy/internal/pkg/deploy"
	"github.com/aws/lambdeploy/internal/pkg/patch"
	"github.com/aws/lambdeploy/internal/pkg/retry"
	"github.com/aws/lambdeploy/internal/pkg/term/color"
	"github.com/aws/lambdeploy/internal/pkg/term/log"
	"github.com/aws/lambdeploy/internal/pkg/term/prompt"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	// Lambda@Edge functions must be created in this region.
	edgeRegion           = "us-east-1"
	edgeServicePrincipal = "edgelambda.amazonaws.com"

	// Returned by CloudFront until IAM propagates the trust policy of the function's role.
	errCodeInvalidLambdaAssociation = "InvalidLambdaFunctionAssociation"

	triggerRetryDelay  = 5 * time.Second
	triggerMaxAttempts = 12

	distributionPrompt     = "What is the ID of the CloudFront distribution?"
	distributionPromptHelp = "The function is invoked by the cache behaviors of this distribution."
	eventTypesPrompt       = "Which events should invoke the function?"
	eventTypesPromptHelp   = "Viewer events run for every request, origin events only on cache misses."
)

var edgeEventTypes = []string{"viewer-request", "origin-request", "origin-response", "viewer-response"}

type setCloudFrontTriggerVars struct {
	sourceDir      string
	configPath     string
	profile        string
	alias          string
	distributionID string
	pathPattern    string
	eventTypes     []string
}

type setCloudFrontTriggerOpts struct {
	setCloudFrontTriggerVars

	store  projectStore
	prompt prompter

	// initClients creates the AWS clients once the project configuration is known.
	initClients  func(project *config.Project) error
	function     functionDescriber
	role         trustPolicyUpdater
	distribution distributionConfigurer

	retryDelay  time.Duration
	maxAttempts int
}

func newSetCloudFrontTriggerOpts(vars setCloudFrontTriggerVars) (*setCloudFrontTriggerOpts, error) {
	sourceDir, err := filepath.Abs(vars.sourceDir)
	if err != nil {
		return nil, fmt.Errorf("resolve project directory %s: %w", vars.sourceDir, err)
	}
	opts := &setCloudFrontTriggerOpts{
		setCloudFrontTriggerVars: vars,
		store:                    config.NewStore(afero.NewOsFs(), configPath(vars.configPath, sourceDir)),
		prompt:                   prompt.New(),
		retryDelay:               triggerRetryDelay,
		maxAttempts:              triggerMaxAttempts,
	}
	opts.initClients = func(project *config.Project) error {
		sess, err := sessions.NewProvider(sessions.WithProfile(vars.profile), sessions.WithRegion(project.Lambda.Region)).Default()
		if err != nil {
			return err
		}
		opts.function = lambda.New(sess)
		opts.role = iam.New(sess)
		opts.distribution = cloudfront.New(sess)
		return nil
	}
	return opts, nil
}

// Validate returns an error if the values passed by flags are invalid.
func (o *setCloudFrontTriggerOpts) Validate() error {
	if err := validateFlag(versionFlag, o.alias, "required,aliasname"); err != nil {
		return err
	}
	if err := validateFlag(distributionFlag, o.distributionID, "omitempty,alphanum"); err != nil {
		return err
	}
	return validateFlag(eventTypesFlag, o.eventTypes, "dive,oneof="+strings.Join(edgeEventTypes, " "))
}

// Ask prompts for the distribution and the event types if they were not passed by flags.
func (o *setCloudFrontTriggerOpts) Ask() error {
	if o.distributionID == "" {
		id, err := o.prompt.Get(distributionPrompt, distributionPromptHelp, func(v interface{}) error {
			return validateFlag(distributionFlag, v, "alphanum")
		})
		if err != nil {
			return fmt.Errorf("get distribution ID: %w", err)
		}
		o.distributionID = id
	}
	if len(o.eventTypes) == 0 {
		eventTypes, err := o.prompt.MultiSelect(eventTypesPrompt, eventTypesPromptHelp, edgeEventTypes)
		if err != nil {
			return fmt.Errorf("select event types: %w", err)
		}
		o.eventTypes = eventTypes
	}
	return nil
}

// Execute associates a published version of the function with the cache behavior of the distribution.
func (o *setCloudFrontTriggerOpts) Execute() error {
	project, err := o.store.Read()
	if err != nil {
		return err
	}
	if project.Lambda.Region != edgeRegion {
		return &errInvalidTriggerRegion{region: project.Lambda.Region}
	}
	if err := o.initClients(project); err != nil {
		return err
	}
	ctx := context.Background()

	fn, err := o.function.FunctionConfiguration(ctx, project.Lambda.Name+":"+o.alias)
	if err != nil {
		return err
	}
	role := project.Lambda.Role
	if role == "" {
		role = fn.Role
	}
	updated, err := o.role.AddServiceToTrustPolicy(role, edgeServicePrincipal)
	if err != nil {
		return err
	}
	if updated {
		log.Infof("Allowed %s to assume role %s.\n", edgeServicePrincipal, color.HighlightResource(iam.RoleName(role)))
	}

	cfg, etag, err := o.distribution.DistributionConfig(o.distributionID)
	if err != nil {
		return err
	}
	behavior := patch.FindCacheBehavior(cfg, o.pathPattern)
	if behavior == nil {
		return &errNoCacheBehavior{distributionID: o.distributionID, pathPattern: o.pathPattern}
	}
	versionARN := qualifiedARN(fn.ARN, fn.Version)
	if _, err := patch.PatchEventAssociations(behavior.LambdaFunctionAssociations(), o.eventTypes, versionARN); err != nil {
		return err
	}
	_, err = retry.Do(ctx, func(context.Context) (struct{}, error) {
		return struct{}{}, o.distribution.UpdateDistributionConfig(o.distributionID, etag, cfg)
	}, o.retryDelay, o.maxAttempts, retry.ErrorCode(errCodeInvalidLambdaAssociation), func() {
		log.Infoln("Waiting for the role to be assumable by CloudFront.")
	})
	if err != nil {
		return err
	}
	log.Successf("Version %s of %s now handles %s on distribution %s.\n",
		fn.Version, color.HighlightResource(project.Lambda.Name), strings.Join(o.eventTypes, ", "), color.HighlightResource(o.distributionID))
	return nil
}

// RecommendedActions returns follow-up actions the user can take after successfully executing the command.
func (o *setCloudFrontTriggerOpts) RecommendedActions() []string {
	return []string{
		"CloudFront takes a few minutes to deploy the change to its edge locations.",
	}
}

// qualifiedARN returns the ARN of a function version, replacing any qualifier of fnARN.
func qualifiedARN(fnARN, version string) string {
	// arn:partition:lambda:region:account:function:name[:qualifier]
	parts := strings.SplitN(fnARN, ":", 8)
	if len(parts) > 7 {
		parts = parts[:7]
	}
	return strings.Join(parts, ":") + ":" + version
}

// BuildSetCloudFrontTriggerCmd builds the command for invoking the function from a CloudFront distribution.
func BuildSetCloudFrontTriggerCmd() *cobra.Command {
	vars := setCloudFrontTriggerVars{}
	cmd := &cobra.Command{
		Use:   "set-cloudfront-trigger",
		Short: "Invoke a published version of the function from CloudFront events.",
		Example: `
  Run the "latest" version for every viewer request of the default cache behavior.
  /code $ lambdeploy set-cloudfront-trigger --distribution-id E2QWRUHAPOMQZL --event-types viewer-request
  Run the "prod" version on origin responses for images.
  /code $ lambdeploy set-cloudfront-trigger --distribution-id E2QWRUHAPOMQZL --path-pattern "/img/*" --event-types origin-response --version prod`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			opts, err := newSetCloudFrontTriggerOpts(vars)
			if err != nil {
				return err
			}
			return run(opts)
		}),
		Annotations: map[string]string{
			"group": group.Release,
		},
	}
	cmd.Flags().StringVarP(&vars.sourceDir, sourceFlag, sourceFlagShort, ".", sourceFlagDescription)
	cmd.Flags().StringVarP(&vars.configPath, configFlag, configFlagShort, "", configFlagDescription)
	cmd.Flags().StringVar(&vars.profile, profileFlag, "", profileFlagDescription)
	cmd.Flags().StringVar(&vars.alias, versionFlag, deploy.DefaultAlias, versionFlagDescription)
	cmd.Flags().StringVar(&vars.distributionID, distributionFlag, "", distributionFlagDescription)
	cmd.Flags().StringVar(&vars.pathPattern, pathPatternFlag, "", pathPatternFlagDescription)
	cmd.Flags().StringSliceVar(&vars.eventTypes, eventTypesFlag, nil, eventTypesFlagDescription)
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}

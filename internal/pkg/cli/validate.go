// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/aws/lambdeploy/cmd/lambdeploy/template"
	"github.com/aws/lambdeploy/internal/pkg/cli/group"
	"github.com/aws/lambdeploy/internal/pkg/config"
	"github.com/aws/lambdeploy/internal/pkg/descriptor"
	"github.com/aws/lambdeploy/internal/pkg/term/color"
	"github.com/aws/lambdeploy/internal/pkg/term/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type validateVars struct {
	sourceDir  string
	configPath string
	handler    string
	apiModule  string
	all        bool
}

type validateOpts struct {
	validateVars

	fs    afero.Fs
	store projectStore

	target descriptor.Target
}

func newValidateOpts(vars validateVars) (*validateOpts, error) {
	sourceDir, err := filepath.Abs(vars.sourceDir)
	if err != nil {
		return nil, fmt.Errorf("resolve project directory %s: %w", vars.sourceDir, err)
	}
	vars.sourceDir = sourceDir
	fs := afero.NewOsFs()
	return &validateOpts{
		validateVars: vars,
		fs:           fs,
		store:        config.NewStore(fs, configPath(vars.configPath, sourceDir)),
	}, nil
}

// Validate returns an error if both a handler and an API module are passed.
func (o *validateOpts) Validate() error {
	if o.handler != "" && o.apiModule != "" {
		return fmt.Errorf("--%s and --%s cannot be specified together", handlerFlag, apiModuleFlag)
	}
	return nil
}

// Ask resolves the target from the project configuration when no flag selects it.
func (o *validateOpts) Ask() error {
	if o.handler != "" || o.apiModule != "" {
		o.target = descriptor.Target{Handler: o.handler, APIModule: o.apiModule}
		return nil
	}
	project, err := o.store.Read()
	if err != nil {
		var noConfig *config.ErrNoProjectConfig
		if errors.As(err, &noConfig) {
			return fmt.Errorf("%w, pass --%s or --%s instead", err, handlerFlag, apiModuleFlag)
		}
		return err
	}
	o.target = project.Target()
	return nil
}

// Execute checks the application without changing anything remotely.
func (o *validateOpts) Execute() error {
	if !o.all {
		if _, err := descriptor.ValidatePackage(o.fs, o.sourceDir, o.target); err != nil {
			return err
		}
		log.Successf("%s is ready to be deployed.\n", color.HighlightResource(o.target.Module()))
		return nil
	}
	app, err := descriptor.LoadPackage(o.fs, o.sourceDir, o.target)
	if err != nil {
		return err
	}
	if routed, ok := app.(*descriptor.RoutedApplication); ok {
		d, err := routed.Descriptor()
		if err != nil {
			return err
		}
		if err := descriptor.ValidateAll(routed.Module, d); err != nil {
			return err
		}
	}
	log.Successf("%s is ready to be deployed.\n", color.HighlightResource(app.ModuleName()))
	return nil
}

// RecommendedActions returns follow-up actions the user can take after successfully executing the command.
func (o *validateOpts) RecommendedActions() []string {
	return []string{
		fmt.Sprintf("Run %s to deploy it.", color.HighlightCode("lambdeploy update")),
	}
}

// BuildValidateCmd builds the command for validating a project before it is deployed.
func BuildValidateCmd() *cobra.Command {
	vars := validateVars{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that the project can be deployed.",
		Example: `
  Check the API descriptor of the project in the current directory.
  /code $ lambdeploy validate
  List every problem of the API exported by the "api" module.
  /code $ lambdeploy validate --api-module api --all`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			opts, err := newValidateOpts(vars)
			if err != nil {
				return err
			}
			return run(opts)
		}),
		Annotations: map[string]string{
			"group": group.Develop,
		},
	}
	cmd.Flags().StringVarP(&vars.sourceDir, sourceFlag, sourceFlagShort, ".", sourceFlagDescription)
	cmd.Flags().StringVarP(&vars.configPath, configFlag, configFlagShort, "", configFlagDescription)
	cmd.Flags().StringVar(&vars.handler, handlerFlag, "", handlerFlagDescription)
	cmd.Flags().StringVar(&vars.apiModule, apiModuleFlag, "", apiModuleFlagDescription)
	cmd.Flags().BoolVar(&vars.all, allFlag, false, allFlagDescription)
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aws/lambdeploy/cmd/lambdeploy/template"
	"github.com/aws/lambdeploy/internal/pkg/aws/apigateway"
	"github.com/aws/lambdeploy/internal/pkg/aws/iam"
	"github.com/aws/lambdeploy/internal/pkg/aws/lambda"
	"github.com/aws/lambdeploy/internal/pkg/aws/sessions"
	"github.com/aws/lambdeploy/internal/pkg/cli/group"
	"github.com/aws/lambdeploy/internal/pkg/config"
	"github.com/aws/lambdeploy/internal/pkg/term/color"
	"github.com/aws/lambdeploy/internal/pkg/term/log"
	"github.com/aws/lambdeploy/internal/pkg/term/prompt"
	"github.com/aws/lambdeploy/internal/pkg/term/spinner"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	fmtDestroyConfirmPrompt = "Are you sure you want to delete function %s?"
	destroyConfirmHelp      = "This deletes the function, its REST API and its execution role, and removes the local project configuration."

	fmtDestroyAPIStartMsg      = "Deleting REST API %s."
	fmtDestroyAPIStopMsg       = "Deleted REST API %s."
	fmtDestroyFunctionStartMsg = "Deleting function %s."
	fmtDestroyFunctionStopMsg  = "Deleted function %s."
	fmtDestroyRoleStartMsg     = "Deleting role %s."
	fmtDestroyRoleStopMsg      = "Deleted role %s."
	fmtDestroyConfigStartMsg   = "Deleting local %s file."
	fmtDestroyConfigStopMsg    = "Deleted local %s file."
)

type destroyVars struct {
	sourceDir        string
	configPath       string
	profile          string
	skipConfirmation bool
}

type destroyOpts struct {
	destroyVars

	store   projectStore
	prompt  prompter
	spinner progress

	// initClients creates the AWS clients once the project configuration is known.
	initClients func(project *config.Project) error
	api         restAPIDeleter
	function    functionDeleter
	role        roleDeleter

	project *config.Project
}

func newDestroyOpts(vars destroyVars) (*destroyOpts, error) {
	sourceDir, err := filepath.Abs(vars.sourceDir)
	if err != nil {
		return nil, fmt.Errorf("resolve project directory %s: %w", vars.sourceDir, err)
	}
	opts := &destroyOpts{
		destroyVars: vars,
		store:       config.NewStore(afero.NewOsFs(), configPath(vars.configPath, sourceDir)),
		prompt:      prompt.New(),
		spinner:     spinner.New(log.DiagnosticWriter),
	}
	opts.initClients = func(project *config.Project) error {
		sess, err := sessions.NewProvider(sessions.WithProfile(vars.profile), sessions.WithRegion(project.Lambda.Region)).Default()
		if err != nil {
			return err
		}
		opts.api = apigateway.New(sess)
		opts.function = lambda.New(sess)
		opts.role = iam.New(sess)
		return nil
	}
	return opts, nil
}

// Validate is a no-op for this command.
func (o *destroyOpts) Validate() error {
	return nil
}

// Ask reads the project configuration and confirms the deletion with the user.
func (o *destroyOpts) Ask() error {
	project, err := o.store.Read()
	if err != nil {
		return err
	}
	o.project = project
	if o.skipConfirmation {
		return nil
	}
	confirmed, err := o.prompt.Confirm(fmt.Sprintf(fmtDestroyConfirmPrompt, color.HighlightUserInput(project.Lambda.Name)), destroyConfirmHelp)
	if err != nil {
		return fmt.Errorf("confirm deletion of function %s: %w", project.Lambda.Name, err)
	}
	if !confirmed {
		return errOperationCancelled
	}
	return nil
}

// Execute deletes the REST API, the function and its role, then the project configuration.
func (o *destroyOpts) Execute() error {
	if err := o.initClients(o.project); err != nil {
		return err
	}
	ctx := context.Background()
	if id := o.project.API.ID; id != "" {
		if err := o.step(fmtDestroyAPIStartMsg, fmtDestroyAPIStopMsg, id, func() error {
			return o.api.DeleteRestAPI(ctx, id)
		}); err != nil {
			return err
		}
	}
	name := o.project.Lambda.Name
	if err := o.step(fmtDestroyFunctionStartMsg, fmtDestroyFunctionStopMsg, name, func() error {
		return o.function.DeleteFunction(ctx, name)
	}); err != nil {
		return err
	}
	if role := o.project.Lambda.Role; role != "" {
		if err := o.step(fmtDestroyRoleStartMsg, fmtDestroyRoleStopMsg, iam.RoleName(role), func() error {
			return o.role.DeleteRole(role)
		}); err != nil {
			return err
		}
	}
	return o.step(fmtDestroyConfigStartMsg, fmtDestroyConfigStopMsg, filepath.Base(o.store.Path()), o.store.Delete)
}

// RecommendedActions is a no-op for this command.
func (o *destroyOpts) RecommendedActions() []string {
	return nil
}

func (o *destroyOpts) step(fmtStart, fmtStop, name string, do func() error) error {
	o.spinner.Start(fmt.Sprintf(fmtStart, name))
	if err := do(); err != nil {
		o.spinner.Stop(log.Serrorf(fmtStart, name))
		return err
	}
	o.spinner.Stop(log.Ssuccessf(fmtStop, name))
	return nil
}

// BuildDestroyCmd builds the command for deleting a deployed application.
func BuildDestroyCmd() *cobra.Command {
	vars := destroyVars{}
	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Delete the function, its REST API and its role.",
		Example: `
  Delete the application of the project in the current directory.
  /code $ lambdeploy destroy
  Delete it without confirmation.
  /code $ lambdeploy destroy --yes`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			opts, err := newDestroyOpts(vars)
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
	cmd.Flags().BoolVar(&vars.skipConfirmation, yesFlag, false, yesFlagDescription)
	cmd.SetUsageTemplate(template.Usage)
	return cmd
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/aws/lambdeploy/internal/pkg/archive"
	"github.com/aws/lambdeploy/internal/pkg/aws/apigateway"
	"github.com/aws/lambdeploy/internal/pkg/aws/identity"
	"github.com/aws/lambdeploy/internal/pkg/aws/lambda"
	"github.com/aws/lambdeploy/internal/pkg/aws/s3"
	"github.com/aws/lambdeploy/internal/pkg/aws/sessions"
	"github.com/aws/lambdeploy/internal/pkg/cli/group"
	"github.com/aws/lambdeploy/internal/pkg/config"
	"github.com/aws/lambdeploy/internal/pkg/deploy"
	"github.com/aws/lambdeploy/internal/pkg/term/color"
	"github.com/aws/lambdeploy/internal/pkg/term/command"
	"github.com/aws/lambdeploy/internal/pkg/term/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type updateVars struct {
	sourceDir      string
	configPath     string
	profile        string
	alias          string
	stage          string
	bucket         string
	setEnv         map[string]string
	setEnvFromJSON string
	updateEnv      bool
	envKMSKeyARN   string
	installOptions string
}

type updateOpts struct {
	updateVars

	fs    afero.Fs
	store projectStore
	out   io.Writer
	// newPipeline builds the pipeline once the project configuration is known.
	newPipeline func(project *config.Project) (pipelineRunner, error)

	envFromJSON map[string]string
	state       *deploy.State
}

func newUpdateOpts(vars updateVars) (*updateOpts, error) {
	sourceDir, err := filepath.Abs(vars.sourceDir)
	if err != nil {
		return nil, fmt.Errorf("resolve project directory %s: %w", vars.sourceDir, err)
	}
	vars.sourceDir = sourceDir
	fs := afero.NewOsFs()
	store := config.NewStore(fs, configPath(vars.configPath, sourceDir))
	return &updateOpts{
		updateVars: vars,
		fs:         fs,
		store:      store,
		out:        log.OutputWriter,
		newPipeline: func(project *config.Project) (pipelineRunner, error) {
			provider := sessions.NewProvider(sessions.WithProfile(vars.profile), sessions.WithRegion(project.Lambda.Region))
			sess, err := provider.Default()
			if err != nil {
				return nil, err
			}
			logger := deploy.NewConsoleLogger(log.DiagnosticWriter)
			logged := sessions.WithAPICallLogger(sess, logger)
			return deploy.NewPipeline(deploy.PipelineConfig{
				Fs: fs,
				Packager: archive.New(fs, command.New(), archive.Options{
					Target:         project.Target(),
					InstallOptions: vars.installOptions,
					Exclude:        []string{filepath.Base(store.Path())},
					Out:            log.DiagnosticWriter,
				}),
				Uploader:    s3.New(logged),
				Function:    lambda.New(logged),
				Routing:     apigateway.New(logged),
				Identity:    identity.New(logged),
				Workdir:     deploy.NewWorkdir(),
				Logger:      logger,
				Diagnostics: log.DiagnosticWriter,
			}), nil
		},
	}, nil
}

// Validate returns an error if the values passed by flags are invalid.
func (o *updateOpts) Validate() error {
	if err := validateFlag(versionFlag, o.alias, "omitempty,aliasname"); err != nil {
		return err
	}
	if err := validateFlag(stageFlag, o.stage, "omitempty,resourcename"); err != nil {
		return err
	}
	if err := validateFlag(envKMSKeyARNFlag, o.envKMSKeyARN, "omitempty,startswith=arn:"); err != nil {
		return err
	}
	if o.setEnvFromJSON == "" {
		return nil
	}
	content, err := afero.ReadFile(o.fs, o.setEnvFromJSON)
	if err != nil {
		return fmt.Errorf("read --%s file: %w", setEnvFromJSONFlag, err)
	}
	if err := json.Unmarshal(content, &o.envFromJSON); err != nil {
		return fmt.Errorf("--%s file %s must be a JSON object of strings: %w", setEnvFromJSONFlag, o.setEnvFromJSON, err)
	}
	return nil
}

// Ask is a no-op for this command.
func (o *updateOpts) Ask() error {
	return nil
}

// Execute packages the project and updates the function and its API.
func (o *updateOpts) Execute() error {
	project, err := o.store.Read()
	if err != nil {
		return err
	}
	pipeline, err := o.newPipeline(project)
	if err != nil {
		return err
	}
	state, err := pipeline.Run(context.Background(), deploy.Input{
		SourceDir:    o.sourceDir,
		FunctionName: project.Lambda.Name,
		Region:       project.Lambda.Region,
		Target:       project.Target(),
		Alias:        o.alias,
		Stage:        o.stage,
		Bucket:       o.bucket,
		APIID:        project.API.ID,
		Env:          o.envOptions(),
	})
	if err != nil {
		return err
	}
	o.state = state
	o.printSummary(project)
	return nil
}

// RecommendedActions returns follow-up actions the user can take after successfully executing the command.
func (o *updateOpts) RecommendedActions() []string {
	if o.state == nil || o.state.URL == "" {
		return nil
	}
	return []string{
		fmt.Sprintf("Send a request to your API with %s.", color.HighlightCode("curl "+o.state.URL)),
	}
}

func (o *updateOpts) envOptions() *deploy.EnvOptions {
	opts := &deploy.EnvOptions{
		Vars:      o.setEnv,
		FromJSON:  o.envFromJSON,
		Update:    o.updateEnv,
		KMSKeyARN: o.envKMSKeyARN,
	}
	if !opts.IsSet() {
		return nil
	}
	return opts
}

func (o *updateOpts) printSummary(project *config.Project) {
	s := o.state
	log.Successf("Updated function %s to version %s (%s) with alias %s.\n",
		color.HighlightResource(project.Lambda.Name), s.FunctionVersion, humanize.Bytes(uint64(s.ArchiveSize)), s.Alias)
	if s.URL == "" || s.Descriptor == nil {
		return
	}
	fmt.Fprint(o.out, routeTree(s.URL, s.Descriptor))
}

// BuildUpdateCmd builds the command for updating a deployed application.
func BuildUpdateCmd() *cobra.Command {
	vars := updateVars{}
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Package the project and update its function and REST API.",
		Long: `Package the project and update its function and REST API.
The function code is replaced, a new version is published under the alias,
and the routes declared by the API module are rebuilt before the stage is redeployed.`,
		Example: `
  Update the project in the current directory.
  /code $ lambdeploy update
  Publish to the "prod" alias and stage, keeping the existing environment.
  /code $ lambdeploy update --version prod --set-env STAGE=prod --update-env`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			opts, err := newUpdateOpts(vars)
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
	cmd.Flags().StringVar(&vars.stage, stageFlag, "", stageFlagDescription)
	cmd.Flags().StringVar(&vars.bucket, bucketFlag, "", bucketFlagDescription)
	cmd.Flags().StringToStringVar(&vars.setEnv, setEnvFlag, nil, setEnvFlagDescription)
	cmd.Flags().StringVar(&vars.setEnvFromJSON, setEnvFromJSONFlag, "", setEnvFromJSONFlagDescription)
	cmd.Flags().BoolVar(&vars.updateEnv, updateEnvFlag, false, updateEnvFlagDescription)
	cmd.Flags().StringVar(&vars.envKMSKeyARN, envKMSKeyARNFlag, "", envKMSKeyARNFlagDescription)
	cmd.Flags().StringVar(&vars.installOptions, installOptionsFlag, "", installOptionsFlagDescription)

	// group flags.
	projectFlags := pflag.NewFlagSet("Project", pflag.ContinueOnError)
	projectFlags.AddFlag(cmd.Flags().Lookup(sourceFlag))
	projectFlags.AddFlag(cmd.Flags().Lookup(configFlag))
	projectFlags.AddFlag(cmd.Flags().Lookup(profileFlag))
	projectFlags.AddFlag(cmd.Flags().Lookup(installOptionsFlag))

	releaseFlags := pflag.NewFlagSet("Release", pflag.ContinueOnError)
	releaseFlags.AddFlag(cmd.Flags().Lookup(versionFlag))
	releaseFlags.AddFlag(cmd.Flags().Lookup(stageFlag))
	releaseFlags.AddFlag(cmd.Flags().Lookup(bucketFlag))

	envFlags := pflag.NewFlagSet("Environment", pflag.ContinueOnError)
	envFlags.AddFlag(cmd.Flags().Lookup(setEnvFlag))
	envFlags.AddFlag(cmd.Flags().Lookup(setEnvFromJSONFlag))
	envFlags.AddFlag(cmd.Flags().Lookup(updateEnvFlag))
	envFlags.AddFlag(cmd.Flags().Lookup(envKMSKeyARNFlag))

	// prettify help menu.
	cmd.Annotations["project"] = projectFlags.FlagUsages()
	cmd.Annotations["release"] = releaseFlags.FlagUsages()
	cmd.Annotations["environment"] = envFlags.FlagUsages()
	cmd.SetUsageTemplate(`{{h1 "Usage"}}
{{- if .Runnable}}
  {{.UseLine}}
{{- end }}

{{h1 "Project Flags"}}
{{(index .Annotations "project") | trimTrailingWhitespaces}}

{{h1 "Release Flags"}}
{{(index .Annotations "release") | trimTrailingWhitespaces}}

{{h1 "Environment Flags"}}
{{(index .Annotations "environment") | trimTrailingWhitespaces}}
{{if .HasExample}}
{{h1 "Examples"}}{{code .Example}}{{end}}
`)
	return cmd
}

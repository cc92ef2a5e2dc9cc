// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cli contains the lambdeploy subcommands.
package cli

import (
	"os"
	"path/filepath"

	"github.com/aws/lambdeploy/internal/pkg/config"
	"github.com/aws/lambdeploy/internal/pkg/term/log"
	"github.com/spf13/cobra"
)

// actionCommand is the interface that every command implements.
type actionCommand interface {
	// Validate returns an error if a flag's value is invalid.
	Validate() error

	// Ask prompts for flag values that are required but not passed in.
	Ask() error

	// Execute runs the command after collecting all required options.
	Execute() error

	// RecommendedActions returns a list of follow-up suggestions users can run once the command executes successfully.
	RecommendedActions() []string
}

// run validates the flags of cmd, asks for missing ones and executes it.
func run(cmd actionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Ask(); err != nil {
		return err
	}
	if err := cmd.Execute(); err != nil {
		return err
	}
	logRecommendedActions(cmd.RecommendedActions())
	return nil
}

func logRecommendedActions(actions []string) {
	if len(actions) == 0 {
		return
	}
	log.Infoln("Recommended follow-up actions:")
	for _, followup := range actions {
		log.Infof("- %s\n", followup)
	}
}

// runCmdE wraps one of the run error methods, PreRunE, RunE, of a cobra command so that if a user
// types "help" in the arguments the usage string is printed instead of running the command.
func runCmdE(f func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && args[0] == "help" {
			_ = cmd.Help() // Help always returns nil.
			os.Exit(0)
		}
		return f(cmd, args)
	}
}

// configPath returns the project configuration file, which defaults to the one in sourceDir.
func configPath(flagValue, sourceDir string) string {
	if flagValue != "" {
		return flagValue
	}
	return filepath.Join(sourceDir, config.DefaultFile)
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package command runs external programs with their output forwarded to the terminal.
package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Service runs commands.
type Service struct{}

// New returns a Service.
func New() Service {
	return Service{}
}

// Option configures the command before it runs.
type Option func(cmd *exec.Cmd)

// Stdin feeds input to the command.
func Stdin(input string) Option {
	return func(c *exec.Cmd) {
		c.Stdin = strings.NewReader(input)
	}
}

// Stdout redirects the standard output of the command to writer.
func Stdout(writer io.Writer) Option {
	return func(c *exec.Cmd) {
		c.Stdout = writer
	}
}

// Stderr redirects the standard error of the command to writer.
func Stderr(writer io.Writer) Option {
	return func(c *exec.Cmd) {
		c.Stderr = writer
	}
}

// Dir runs the command in dir.
func Dir(dir string) Option {
	return func(c *exec.Cmd) {
		c.Dir = dir
	}
}

// Run runs name with args and waits for it to exit.
// Both outputs of the command go to standard error unless redirected.
func (s Service) Run(ctx context.Context, name string, args []string, options ...Option) error {
	cmd := exec.CommandContext(ctx, name, args...)

	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	for _, opt := range options {
		opt(cmd)
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

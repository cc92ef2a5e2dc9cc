// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrInstallFailed means the production dependencies of a project couldn't be installed.
type ErrInstallFailed struct {
	Dir string
	Err error
}

func (e *ErrInstallFailed) Error() string {
	return fmt.Sprintf("install dependencies of %s: %v", e.Dir, e.Err)
}

// Unwrap returns the error of the installation command.
func (e *ErrInstallFailed) Unwrap() error {
	return e.Err
}

// RecommendActions returns recommended actions to be taken after the error.
func (e *ErrInstallFailed) RecommendActions() string {
	return fmt.Sprintf("Check that %s installs cleanly with %s.", e.Dir, "npm install --production")
}

// ExitCode returns the exit code of the installation command, or 1 if the command did not run.
func (e *ErrInstallFailed) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}

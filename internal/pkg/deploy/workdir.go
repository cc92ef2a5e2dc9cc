// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package deploy

import (
	"fmt"
	"os"
)

// Workdir changes the working directory of the process and restores it later.
type Workdir struct {
	original string

	getwd func() (string, error)
	chdir func(dir string) error
}

// NewWorkdir returns a Workdir for the current process.
func NewWorkdir() *Workdir {
	return &Workdir{
		getwd: os.Getwd,
		chdir: os.Chdir,
	}
}

// Enter changes the working directory to dir.
// The directory from before the first Enter is kept until Restore.
func (w *Workdir) Enter(dir string) error {
	if w.original == "" {
		wd, err := w.getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		w.original = wd
	}
	if err := w.chdir(dir); err != nil {
		return fmt.Errorf("change working directory to %s: %w", dir, err)
	}
	return nil
}

// Restore changes back to the working directory from before Enter.
// It does nothing if Enter was not called.
func (w *Workdir) Restore() error {
	if w.original == "" {
		return nil
	}
	if err := w.chdir(w.original); err != nil {
		return fmt.Errorf("restore working directory %s: %w", w.original, err)
	}
	w.original = ""
	return nil
}

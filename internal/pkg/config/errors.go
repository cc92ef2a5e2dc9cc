// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import "fmt"

// ErrNoProjectConfig means the project configuration file couldn't be found.
type ErrNoProjectConfig struct {
	Path string
}

// Is returns whether the provided error equals this error.
func (e *ErrNoProjectConfig) Is(target error) bool {
	t, ok := target.(*ErrNoProjectConfig)
	if !ok {
		return false
	}
	return e.Path == t.Path
}

func (e *ErrNoProjectConfig) Error() string {
	return fmt.Sprintf("couldn't find the project configuration %s", e.Path)
}

// RecommendActions returns recommended actions to be taken after the error.
func (e *ErrNoProjectConfig) RecommendActions() string {
	return fmt.Sprintf("Run the command from the project directory, or point to the configuration with %s.", "--config")
}

type errMissingField struct {
	Field string
}

func (e *errMissingField) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

/*
Package config reads and writes the project configuration of a deployed application.
The configuration records the function, its region and execution role, and the REST API
that fronts it. Values in the file can be overridden with LAMBDEPLOY_ prefixed environment variables,
for example LAMBDEPLOY_LAMBDA_REGION.
*/
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/lambdeploy/internal/pkg/descriptor"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultFile is the name of the project configuration file.
	DefaultFile = "lambdeploy.json"

	envPrefix = "LAMBDEPLOY"
)

// Keys that can be overridden by the environment.
var keys = []string{
	"lambda.name",
	"lambda.region",
	"lambda.role",
	"lambda.handler",
	"api.id",
	"api.module",
}

// Project is the configuration of a deployed application.
type Project struct {
	Lambda Lambda `json:"lambda" mapstructure:"lambda"`
	API    API    `json:"api,omitzero" mapstructure:"api"`
}

// Lambda is the function that runs the application.
type Lambda struct {
	Name    string `json:"name" mapstructure:"name"`
	Region  string `json:"region" mapstructure:"region"`
	Role    string `json:"role,omitempty" mapstructure:"role"`
	Handler string `json:"handler,omitempty" mapstructure:"handler"`
}

// API is the REST API that routes requests to the function.
type API struct {
	ID     string `json:"id,omitempty" mapstructure:"id"`
	Module string `json:"module,omitempty" mapstructure:"module"`
}

// HasAPI returns true if the application is fronted by a REST API.
func (p *Project) HasAPI() bool {
	return p.API.ID != ""
}

// Target returns how the packaged application is invoked.
func (p *Project) Target() descriptor.Target {
	if p.API.Module != "" {
		return descriptor.Target{APIModule: p.API.Module}
	}
	return descriptor.Target{Handler: p.Lambda.Handler}
}

func (p *Project) validate() error {
	if p.Lambda.Name == "" {
		return &errMissingField{Field: "lambda.name"}
	}
	if p.Lambda.Region == "" {
		return &errMissingField{Field: "lambda.region"}
	}
	return nil
}

// Store reads and writes a project configuration file.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore returns a Store for the configuration file at path.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{
		fs:   fs,
		path: path,
	}
}

// Path returns the location of the configuration file.
func (s *Store) Path() string {
	return s.path
}

// Read returns the project configuration with the environment overrides applied.
func (s *Store) Read() (*Project, error) {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("check if %s exists: %w", s.path, err)
	}
	if !exists {
		return nil, &ErrNoProjectConfig{Path: s.path}
	}

	v := viper.New()
	v.SetFs(s.fs)
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	for _, key := range keys {
		v.SetDefault(key, "")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var p Project
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", s.path, err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", s.path, err)
	}
	return &p, nil
}

// Write replaces the configuration file with p.
func (s *Store) Write(p *Project) error {
	content, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal project configuration: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, append(content, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Delete removes the configuration file.
// If the file does not exist it returns nil.
func (s *Store) Delete() error {
	if err := s.fs.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", s.path, err)
	}
	return nil
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"testing"

	"github.com/aws/lambdeploy/internal/pkg/descriptor"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const configPath = "/project/lambdeploy.json"

func TestStore_Read(t *testing.T) {
	testCases := map[string]struct {
		inContent string
		inEnv     map[string]string

		wanted    *Project
		wantedErr string
	}{
		"reads a function with an API": {
			inContent: `{"lambda":{"name":"hello","region":"us-east-1","role":"hello-executor"},"api":{"id":"abc123","module":"api"}}`,
			wanted: &Project{
				Lambda: Lambda{Name: "hello", Region: "us-east-1", Role: "hello-executor"},
				API:    API{ID: "abc123", Module: "api"},
			},
		},
		"reads a bare function": {
			inContent: `{"lambda":{"name":"hello","region":"us-east-1","handler":"main.handler"}}`,
			wanted: &Project{
				Lambda: Lambda{Name: "hello", Region: "us-east-1", Handler: "main.handler"},
			},
		},
		"applies environment overrides": {
			inContent: `{"lambda":{"name":"hello","region":"us-east-1"}}`,
			inEnv: map[string]string{
				"LAMBDEPLOY_LAMBDA_REGION": "eu-west-1",
				"LAMBDEPLOY_API_ID":        "xyz",
			},
			wanted: &Project{
				Lambda: Lambda{Name: "hello", Region: "eu-west-1"},
				API:    API{ID: "xyz"},
			},
		},
		"requires a function name": {
			inContent: `{"lambda":{"region":"us-east-1"}}`,
			wantedErr: "validate /project/lambdeploy.json: lambda.name is required",
		},
		"requires a region": {
			inContent: `{"lambda":{"name":"hello"}}`,
			wantedErr: "validate /project/lambdeploy.json: lambda.region is required",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			for k, v := range tc.inEnv {
				t.Setenv(k, v)
			}
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, configPath, []byte(tc.inContent), 0644))

			// WHEN
			got, err := NewStore(fs, configPath).Read()

			// THEN
			if tc.wantedErr != "" {
				require.EqualError(t, err, tc.wantedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wanted, got)
		})
	}
}

func TestStore_ReadMissingFile(t *testing.T) {
	_, err := NewStore(afero.NewMemMapFs(), configPath).Read()

	require.True(t, errors.Is(err, &ErrNoProjectConfig{Path: configPath}))
}

func TestStore_Write(t *testing.T) {
	testCases := map[string]struct {
		in     *Project
		wanted string
	}{
		"omits the API of bare functions": {
			in: &Project{Lambda: Lambda{Name: "hello", Region: "us-east-1", Handler: "main.handler"}},
			wanted: `{
  "lambda": {
    "name": "hello",
    "region": "us-east-1",
    "handler": "main.handler"
  }
}
`,
		},
		"writes the API": {
			in: &Project{
				Lambda: Lambda{Name: "hello", Region: "us-east-1", Role: "hello-executor"},
				API:    API{ID: "abc123", Module: "api"},
			},
			wanted: `{
  "lambda": {
    "name": "hello",
    "region": "us-east-1",
    "role": "hello-executor"
  },
  "api": {
    "id": "abc123",
    "module": "api"
  }
}
`,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			fs := afero.NewMemMapFs()
			s := NewStore(fs, configPath)

			// WHEN
			err := s.Write(tc.in)

			// THEN
			require.NoError(t, err)
			content, err := afero.ReadFile(fs, configPath)
			require.NoError(t, err)
			require.Equal(t, tc.wanted, string(content))
		})
	}
}

func TestStore_Delete(t *testing.T) {
	// GIVEN
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, configPath, []byte(`{}`), 0644))
	s := NewStore(fs, configPath)

	// WHEN
	require.NoError(t, s.Delete())
	require.NoError(t, s.Delete())

	// THEN
	exists, err := afero.Exists(fs, configPath)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestProject_Target(t *testing.T) {
	require.Equal(t, descriptor.Target{APIModule: "api"}, (&Project{API: API{ID: "abc", Module: "api"}}).Target())
	require.Equal(t, descriptor.Target{Handler: "main.handler"}, (&Project{Lambda: Lambda{Handler: "main.handler"}}).Target())
	require.True(t, (&Project{API: API{ID: "abc"}}).HasAPI())
	require.False(t, (&Project{}).HasAPI())
}

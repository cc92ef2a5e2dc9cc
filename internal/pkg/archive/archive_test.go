// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"testing"

	"github.com/aws/lambdeploy/internal/pkg/archive/mocks"
	"github.com/aws/lambdeploy/internal/pkg/descriptor"
	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const exportsFile = `{"exports":["proxyRouter"],"apiConfig":{"version":4,"routes":{"hello":{"GET":{}}}}}`

func writeProject(t *testing.T, fs afero.Fs) {
	t.Helper()
	files := map[string]string{
		"/project/package.json":                `{"name":"hello"}`,
		"/project/api.js":                      "module.exports = {}",
		"/project/api.exports.json":            exportsFile,
		"/project/lib/util.js":                 "exports.util = 1",
		"/project/lambdeploy.json":             `{}`,
		"/project/node_modules/dep/index.js":   "dev only",
		"/project/.git/HEAD":                   "ref: refs/heads/main",
		"/project/lib/node_modules/x/index.js": "nested",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
}

func zipEntries(t *testing.T, fs afero.Fs, path string) []string {
	t.Helper()
	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	r, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	require.NoError(t, err)
	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

func TestPackager_Package(t *testing.T) {
	testCases := map[string]struct {
		inOpts   Options
		setupFs  func(t *testing.T, fs afero.Fs)
		inRunner func(m *mocks.Mockrunner)

		wantedEntries []string
		wantedErr     error
	}{
		"packages the project without dependencies, history or configuration": {
			inOpts: Options{
				Target:         descriptor.Target{APIModule: "api"},
				InstallOptions: `--no-audit --registry "https://registry.example.com"`,
				Exclude:        []string{"lambdeploy.json"},
			},
			setupFs: writeProject,
			inRunner: func(m *mocks.Mockrunner) {
				m.EXPECT().Run(gomock.Any(), "npm",
					[]string{"install", "--production", "--no-audit", "--registry", "https://registry.example.com"},
					gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantedEntries: []string{"api.exports.json", "api.js", "lib/util.js", "package.json"},
		},
		"requires a manifest": {
			inOpts:    Options{Target: descriptor.Target{APIModule: "api"}},
			setupFs:   func(t *testing.T, fs afero.Fs) {},
			inRunner:  func(m *mocks.Mockrunner) {},
			wantedErr: errors.New("project directory /project does not contain package.json"),
		},
		"rejects malformed install options": {
			inOpts:    Options{Target: descriptor.Target{APIModule: "api"}, InstallOptions: `--tag "unterminated`},
			setupFs:   writeProject,
			inRunner:  func(m *mocks.Mockrunner) {},
			wantedErr: errors.New(`parse install options "--tag \"unterminated": EOF found when expecting closing quote`),
		},
		"reports failed installations": {
			inOpts:  Options{Target: descriptor.Target{APIModule: "api"}},
			setupFs: writeProject,
			inRunner: func(m *mocks.Mockrunner) {
				m.EXPECT().Run(gomock.Any(), "npm", []string{"install", "--production"},
					gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("exit status 1"))
			},
			wantedErr: errors.New("install dependencies of /project: exit status 1"),
		},
		"validates the packaged application": {
			inOpts:  Options{Target: descriptor.Target{Handler: "main.handler"}},
			setupFs: writeProject,
			inRunner: func(m *mocks.Mockrunner) {
				m.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantedErr: errors.New("cannot load ./main after clean installation: no exports file found for module main"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			ctrl := gomock.NewController(t)
			m := mocks.NewMockrunner(ctrl)
			tc.inRunner(m)
			fs := afero.NewMemMapFs()
			tc.setupFs(t, fs)
			tc.inOpts.Out = io.Discard
			p := New(fs, m, tc.inOpts)

			// WHEN
			archivePath, err := p.Package(context.Background(), "/project")

			// THEN
			if tc.wantedErr != nil {
				require.EqualError(t, err, tc.wantedErr.Error())
				require.NoError(t, p.Cleanup())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantedEntries, zipEntries(t, fs, archivePath))
			exists, err := afero.Exists(fs, p.Dir()+"/api.exports.json")
			require.NoError(t, err)
			require.True(t, exists)

			require.NoError(t, p.Cleanup())
			require.Empty(t, p.Dir())
			exists, err = afero.Exists(fs, archivePath)
			require.NoError(t, err)
			require.False(t, exists)
		})
	}
}

func TestPackager_CleanupWithoutPackage(t *testing.T) {
	p := New(afero.NewMemMapFs(), nil, Options{})

	require.NoError(t, p.Cleanup())
}

func TestErrInstallFailed(t *testing.T) {
	underlying := errors.New("exit status 1")
	err := &ErrInstallFailed{Dir: "/project", Err: underlying}

	require.True(t, errors.Is(err, underlying))
	require.Contains(t, err.RecommendActions(), "npm install --production")
	require.Equal(t, 1, err.ExitCode())
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package descriptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	// ManifestFile is the package manifest that must be present at the root of a project.
	ManifestFile = "package.json"

	// RouterExport is the request router exported by an API module.
	RouterExport = "proxyRouter"
	// DescriptorExport is the API descriptor exported by an API module.
	DescriptorExport = "apiConfig"
)

const jsonExportsSuffix = ".exports.json"

// exportsSuffixes are the files, next to a module, that list what the module exports.
var exportsSuffixes = []string{jsonExportsSuffix, ".exports.yml", ".exports.yaml"}

// Target selects how the packaged application is invoked.
// Exactly one of Handler, in the "module.function" form, or APIModule must be set.
type Target struct {
	Handler   string
	APIModule string
}

// Module returns the path of the module that the target loads.
func (t Target) Module() string {
	if t.APIModule != "" {
		return t.APIModule
	}
	module, _, _ := strings.Cut(t.Handler, ".")
	return module
}

func (t Target) validate() error {
	if t.Handler == "" && t.APIModule == "" {
		return errors.New("either a handler or an API module is required")
	}
	if t.Handler != "" && t.APIModule != "" {
		return errors.New("a handler and an API module cannot be used together")
	}
	if t.Handler != "" {
		if module, fn, ok := strings.Cut(t.Handler, "."); !ok || module == "" || fn == "" {
			return fmt.Errorf("handler %s must be in the module.function format", t.Handler)
		}
	}
	return nil
}

// Application is a loaded application: either a *BareHandler or a *RoutedApplication.
type Application interface {
	ModuleName() string
}

// BareHandler is an application invoked through a single exported function.
type BareHandler struct {
	Module string
	Export string
}

// ModuleName returns the module that exports the handler.
func (a *BareHandler) ModuleName() string { return a.Module }

// RoutedApplication is an application that exports a request router and an API descriptor.
type RoutedApplication struct {
	Module     string
	Router     string
	Descriptor func() (*Descriptor, error)
}

// ModuleName returns the API module.
func (a *RoutedApplication) ModuleName() string { return a.Module }

// exports is the content of a module's exports file.
type exports struct {
	Exports   []string  `yaml:"exports"`
	APIConfig yaml.Node `yaml:"apiConfig"`
}

func (e *exports) has(name string) bool {
	for _, export := range e.Exports {
		if export == name {
			return true
		}
	}
	return false
}

// Loader reads the exports of the modules of a packaged application.
type Loader struct {
	fs afero.Fs
}

// NewLoader returns a Loader that reads from fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load loads the target's module from the application in dir.
func (l *Loader) Load(dir string, target Target) (Application, error) {
	if err := target.validate(); err != nil {
		return nil, err
	}
	module := target.Module()
	ex, err := l.readExports(dir, module)
	if err != nil {
		var invalid *ErrInvalidExports
		if errors.As(err, &invalid) {
			return nil, err
		}
		return nil, &ErrModuleLoad{Module: module, Err: err}
	}
	if target.Handler != "" {
		_, fn, _ := strings.Cut(target.Handler, ".")
		if !ex.has(fn) {
			return nil, &ErrMissingExport{Module: module, Export: fn}
		}
		return &BareHandler{Module: module, Export: fn}, nil
	}
	if !ex.has(RouterExport) {
		return nil, &ErrMissingExport{Module: module, Export: RouterExport}
	}
	if ex.APIConfig.IsZero() {
		return nil, &ErrMissingExport{Module: module, Export: DescriptorExport}
	}
	node := ex.APIConfig
	return &RoutedApplication{
		Module: module,
		Router: RouterExport,
		Descriptor: func() (*Descriptor, error) {
			var d Descriptor
			if err := node.Decode(&d); err != nil {
				return nil, fmt.Errorf("decode %s of %s: %w", DescriptorExport, module, err)
			}
			return &d, nil
		},
	}, nil
}

func (l *Loader) readExports(dir, module string) (*exports, error) {
	for _, suffix := range exportsSuffixes {
		path := filepath.Join(dir, filepath.FromSlash(module)+suffix)
		content, err := afero.ReadFile(l.fs, path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		ex, err := decodeExports(content, suffix == jsonExportsSuffix)
		if err != nil {
			return nil, &ErrInvalidExports{Module: module, Path: path, Err: err}
		}
		return ex, nil
	}
	return nil, fmt.Errorf("no exports file found for module %s", module)
}

// decodeExports decodes an exports file. JSON files are parsed as JSON and then
// converted to a YAML node, since not every JSON document is valid YAML.
func decodeExports(content []byte, isJSON bool) (*exports, error) {
	var ex exports
	if !isJSON {
		if err := yaml.Unmarshal(content, &ex); err != nil {
			return nil, err
		}
		return &ex, nil
	}
	var v interface{}
	if err := json.Unmarshal(content, &v); err != nil {
		return nil, err
	}
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	if err := node.Decode(&ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

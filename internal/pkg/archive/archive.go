// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package archive packages a project directory into a deployable zip archive.
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/lambdeploy/internal/pkg/descriptor"
	"github.com/aws/lambdeploy/internal/pkg/term/command"
	"github.com/google/shlex"
	"github.com/spf13/afero"
)

const (
	installCmd    = "npm"
	packageDir    = "package"
	archiveName   = "package.zip"
	tempDirRoot   = ""
	tempDirPrefix = "lambdeploy-"
)

var (
	installArgs = []string{"install", "--production"}

	// Directories that are never copied into the package.
	excludedDirs = map[string]bool{
		".git":         true,
		"node_modules": true,
	}
)

type runner interface {
	Run(ctx context.Context, name string, args []string, options ...command.Option) error
}

// Options configures a Packager.
type Options struct {
	// Target selects the module that is validated once dependencies are installed.
	Target descriptor.Target
	// InstallOptions are extra arguments for the dependency installation, split like a shell would.
	InstallOptions string
	// Exclude are files at the root of the project that are not packaged.
	Exclude []string
	// Out receives the output of the dependency installation.
	Out io.Writer
}

// Packager copies a project, installs its production dependencies and zips the result.
type Packager struct {
	fs     afero.Fs
	runner runner
	opts   Options

	tmpDir string
}

// New returns a Packager that works on fs and runs the installation with runner.
func New(fs afero.Fs, runner runner, opts Options) *Packager {
	if opts.Out == nil {
		opts.Out = os.Stderr
	}
	return &Packager{
		fs:     fs,
		runner: runner,
		opts:   opts,
	}
}

// Package packages the project in sourceDir and returns the path of the archive.
// The application is validated in the packaged copy before the archive is written.
func (p *Packager) Package(ctx context.Context, sourceDir string) (string, error) {
	exists, err := afero.Exists(p.fs, filepath.Join(sourceDir, descriptor.ManifestFile))
	if err != nil {
		return "", fmt.Errorf("check %s in %s: %w", descriptor.ManifestFile, sourceDir, err)
	}
	if !exists {
		return "", &descriptor.ErrMissingManifest{Dir: sourceDir}
	}
	extraArgs, err := shlex.Split(p.opts.InstallOptions)
	if err != nil {
		return "", fmt.Errorf("parse install options %q: %w", p.opts.InstallOptions, err)
	}

	tmpDir, err := afero.TempDir(p.fs, tempDirRoot, tempDirPrefix)
	if err != nil {
		return "", fmt.Errorf("create temporary directory: %w", err)
	}
	p.tmpDir = tmpDir
	workDir := filepath.Join(tmpDir, packageDir)
	if err := p.copyTree(sourceDir, workDir); err != nil {
		return "", err
	}

	args := append(append([]string{}, installArgs...), extraArgs...)
	if err := p.runner.Run(ctx, installCmd, args,
		command.Dir(workDir), command.Stdout(p.opts.Out), command.Stderr(p.opts.Out)); err != nil {
		return "", &ErrInstallFailed{Dir: sourceDir, Err: err}
	}

	if _, err := descriptor.ValidatePackage(p.fs, workDir, p.opts.Target); err != nil {
		return "", err
	}

	archivePath := filepath.Join(tmpDir, archiveName)
	if err := p.zipTree(workDir, archivePath); err != nil {
		return "", err
	}
	return archivePath, nil
}

// Dir returns the packaged copy of the project once Package succeeded.
func (p *Packager) Dir() string {
	if p.tmpDir == "" {
		return ""
	}
	return filepath.Join(p.tmpDir, packageDir)
}

// Cleanup removes every file created by Package.
func (p *Packager) Cleanup() error {
	if p.tmpDir == "" {
		return nil
	}
	if err := p.fs.RemoveAll(p.tmpDir); err != nil {
		return fmt.Errorf("remove %s: %w", p.tmpDir, err)
	}
	p.tmpDir = ""
	return nil
}

func (p *Packager) excluded(rel string, info os.FileInfo) bool {
	if info.IsDir() {
		return excludedDirs[info.Name()]
	}
	for _, name := range p.opts.Exclude {
		if rel == name {
			return true
		}
	}
	return false
}

func (p *Packager) copyTree(src, dst string) error {
	err := afero.Walk(p.fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel != "." && p.excluded(rel, info) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return p.fs.MkdirAll(target, info.Mode().Perm()|0700)
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		return p.copyFile(path, target, info.Mode().Perm())
	})
	if err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return nil
}

func (p *Packager) copyFile(src, dst string, perm os.FileMode) error {
	in, err := p.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := p.fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (p *Packager) zipTree(dir, archivePath string) error {
	f, err := p.fs.Create(archivePath)
	if err != nil {
		return fmt.Errorf("create archive %s: %w", archivePath, err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	err = afero.Walk(p.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)
		header.Method = zip.Deflate
		entry, err := w.CreateHeader(header)
		if err != nil {
			return err
		}
		in, err := p.fs.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()
		_, err = io.Copy(entry, in)
		return err
	})
	if err != nil {
		return fmt.Errorf("zip %s: %w", dir, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close archive %s: %w", archivePath, err)
	}
	return nil
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package deploy

import (
	"context"
	"fmt"

	"github.com/aws/lambdeploy/internal/pkg/aws/lambda"
	"github.com/aws/lambdeploy/internal/pkg/descriptor"
	"github.com/imdario/mergo"
	"github.com/spf13/afero"
)

// EnvOptions describe how the environment of a function changes.
type EnvOptions struct {
	// Vars are set on the function.
	Vars map[string]string
	// FromJSON are set on the function unless Vars sets the same key.
	FromJSON map[string]string
	// Update keeps the existing variables that are not overwritten.
	Update bool
	// KMSKeyARN encrypts the environment.
	KMSKeyARN string
}

// IsSet returns true if the options change the function.
func (o *EnvOptions) IsSet() bool {
	return o != nil && (len(o.Vars) > 0 || len(o.FromJSON) > 0 || o.KMSKeyARN != "")
}

// BuildFunctionConfiguration computes the configuration of a function from its current
// configuration and the requested changes.
func BuildFunctionConfiguration(existing *lambda.Function, opts EnvOptions) (lambda.Configuration, error) {
	var current map[string]string
	kmsKeyARN := opts.KMSKeyARN
	if existing != nil {
		current = existing.Environment
		if kmsKeyARN == "" {
			kmsKeyARN = existing.KMSKeyARN
		}
	}

	env := make(map[string]string)
	if len(opts.Vars) == 0 && len(opts.FromJSON) == 0 {
		// Only the key changes.
		if err := mergo.Merge(&env, current); err != nil {
			return lambda.Configuration{}, fmt.Errorf("copy existing environment: %w", err)
		}
		return lambda.Configuration{Environment: env, KMSKeyARN: kmsKeyARN}, nil
	}
	if err := mergo.Merge(&env, opts.Vars); err != nil {
		return lambda.Configuration{}, fmt.Errorf("merge environment variables: %w", err)
	}
	if err := mergo.Merge(&env, opts.FromJSON); err != nil {
		return lambda.Configuration{}, fmt.Errorf("merge environment variables from JSON: %w", err)
	}
	if opts.Update {
		if err := mergo.Merge(&env, current); err != nil {
			return lambda.Configuration{}, fmt.Errorf("merge existing environment: %w", err)
		}
	}
	return lambda.Configuration{Environment: env, KMSKeyARN: kmsKeyARN}, nil
}

func (p *Pipeline) packageApplication(ctx context.Context, in Input, s *State) error {
	if err := p.workdir.Enter(in.SourceDir); err != nil {
		return err
	}
	archivePath, err := p.packager.Package(ctx, in.SourceDir)
	if err != nil {
		return err
	}
	info, err := p.fs.Stat(archivePath)
	if err != nil {
		return fmt.Errorf("stat archive %s: %w", archivePath, err)
	}
	s.ArchivePath, s.ArchiveSize = archivePath, info.Size()

	app, err := descriptor.LoadPackage(p.fs, p.packager.Dir(), in.Target)
	if err != nil {
		return err
	}
	s.Application = app
	if routed, ok := app.(*descriptor.RoutedApplication); ok {
		d, err := routed.Descriptor()
		if err != nil {
			return err
		}
		s.Descriptor = d
	}
	return nil
}

func (p *Pipeline) upload(_ context.Context, in Input, s *State) error {
	if in.Bucket == "" {
		return nil
	}
	key := fmt.Sprintf("%s-%s.zip", in.FunctionName, p.newID())
	f, err := p.fs.Open(s.ArchivePath)
	if err != nil {
		return fmt.Errorf("open archive %s: %w", s.ArchivePath, err)
	}
	defer f.Close()
	if _, err := p.uploader.Upload(in.Bucket, key, f); err != nil {
		return err
	}
	s.ArtifactKey = key
	return nil
}

func (p *Pipeline) updateFunctionCode(ctx context.Context, in Input, s *State) error {
	if in.Env.IsSet() {
		if err := p.updateFunctionConfiguration(ctx, in); err != nil {
			return err
		}
	}

	code := lambda.Code{
		S3Bucket: in.Bucket,
		S3Key:    s.ArtifactKey,
	}
	if s.ArtifactKey == "" {
		content, err := afero.ReadFile(p.fs, s.ArchivePath)
		if err != nil {
			return fmt.Errorf("read archive %s: %w", s.ArchivePath, err)
		}
		code = lambda.Code{ZipFile: content}
	}
	fn, err := call(ctx, p, "lambda.UpdateFunctionCode", functionRetryable, func(ctx context.Context) (*lambda.Function, error) {
		return p.function.UpdateFunctionCode(ctx, in.FunctionName, code)
	})
	if err != nil {
		return err
	}
	s.FunctionARN, s.FunctionVersion = fn.ARN, fn.Version

	alias := in.alias()
	if err := exec(ctx, p, "lambda.PublishAlias", functionRetryable, func(ctx context.Context) error {
		return p.function.PublishAlias(ctx, in.FunctionName, alias, fn.Version)
	}); err != nil {
		return err
	}
	s.Alias = alias
	return nil
}

func (p *Pipeline) updateFunctionConfiguration(ctx context.Context, in Input) error {
	existing, err := p.function.FunctionConfiguration(ctx, in.FunctionName)
	if err != nil {
		return err
	}
	cfg, err := BuildFunctionConfiguration(existing, *in.Env)
	if err != nil {
		return err
	}
	_, err = call(ctx, p, "lambda.UpdateFunctionConfiguration", roleRetryable, func(ctx context.Context) (*lambda.Function, error) {
		return p.function.UpdateFunctionConfiguration(ctx, in.FunctionName, cfg)
	})
	return err
}

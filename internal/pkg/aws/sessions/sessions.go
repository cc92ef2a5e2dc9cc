// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sessions provides functions that return AWS sessions to use in the AWS SDK.
package sessions

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/lambdeploy/internal/pkg/version"
)

const (
	userAgentHeader = "User-Agent"

	maxRetriesOnRecoverableFailures = 8 // Default provided by SDK is 3 which means requests are retried up to only 2 seconds.
	credsTimeout                    = 10 * time.Second
	clientTimeout                   = 30 * time.Second
)

type sessionValidator interface {
	ValidateCredentials(sess *session.Session) (credentials.Value, error)
}

// APICallLogger is notified of every request sent to an AWS service.
type APICallLogger interface {
	LogAPICall(name string, args interface{})
}

// Provider provides methods to create sessions.
// Once the default session is created, it's cached so that the same session is not re-created.
type Provider struct {
	profile string
	region  string

	defaultSess      *session.Session
	sessionValidator sessionValidator
}

// ProviderOption configures a Provider.
type ProviderOption func(p *Provider)

// WithProfile uses the named profile of the shared configuration files instead of the default one.
func WithProfile(name string) ProviderOption {
	return func(p *Provider) {
		p.profile = name
	}
}

// WithRegion overrides the region of the shared configuration files and environment variables.
func WithRegion(region string) ProviderOption {
	return func(p *Provider) {
		p.region = region
	}
}

// NewProvider returns a session Provider.
func NewProvider(opts ...ProviderOption) *Provider {
	p := &Provider{
		sessionValidator: &validator{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Default returns a session configured against the provider's profile and region.
func (p *Provider) Default() (*session.Session, error) {
	if p.defaultSess != nil {
		return p.defaultSess, nil
	}
	conf := newConfig()
	if p.region != "" {
		conf = conf.WithRegion(p.region)
	}
	sess, err := p.newSession(conf)
	if err != nil {
		return nil, err
	}
	p.defaultSess = sess
	return sess, nil
}

// DefaultWithRegion returns a session configured against the provider's profile and the input region.
func (p *Provider) DefaultWithRegion(region string) (*session.Session, error) {
	return p.newSession(newConfig().WithRegion(region))
}

func (p *Provider) newSession(conf *aws.Config) (*session.Session, error) {
	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            *conf,
		SharedConfigState: session.SharedConfigEnable,
		Profile:           p.profile,
	})
	if err != nil {
		return nil, err
	}
	if aws.StringValue(sess.Config.Region) == "" {
		return nil, &errMissingRegion{}
	}
	if _, err := p.sessionValidator.ValidateCredentials(sess); err != nil {
		if isCredRetrievalErr(err) {
			return nil, &errCredRetrieval{profile: p.profile, parentErr: err}
		}
		return nil, err
	}
	sess.Handlers.Build.PushBackNamed(userAgentHandler())
	return sess, nil
}

// WithAPICallLogger returns a copy of sess that reports every request it sends to logger.
func WithAPICallLogger(sess *session.Session, logger APICallLogger) *session.Session {
	logged := sess.Copy()
	logged.Handlers.Send.PushFrontNamed(apiCallLoggerHandler(logger))
	return logged
}

func apiCallLoggerHandler(logger APICallLogger) request.NamedHandler {
	return request.NamedHandler{
		Name: "APICallLogger",
		Fn: func(r *request.Request) {
			logger.LogAPICall(APICallName(r), r.Params)
		},
	}
}

// APICallName returns the name of the request in the "service.Operation" form.
func APICallName(r *request.Request) string {
	name := r.ClientInfo.ServiceName
	if r.Operation != nil {
		name = fmt.Sprintf("%s.%s", name, r.Operation.Name)
	}
	return name
}

// Creds returns the credential values from a session.
func Creds(sess *session.Session) (credentials.Value, error) {
	ctx, cancel := context.WithTimeout(context.Background(), credsTimeout)
	defer cancel()

	v, err := sess.Config.Credentials.GetWithContext(ctx)
	if err != nil {
		return credentials.Value{}, fmt.Errorf("get credentials of session: %w", err)
	}
	return v, nil
}

type validator struct{}

// ValidateCredentials fails if the session cannot retrieve credentials.
func (v *validator) ValidateCredentials(sess *session.Session) (credentials.Value, error) {
	return Creds(sess)
}

// newConfig returns a config with an end-to-end request timeout and verbose credentials errors.
func newConfig() *aws.Config {
	c := &http.Client{
		Timeout: clientTimeout,
	}
	return aws.NewConfig().
		WithHTTPClient(c).
		WithCredentialsChainVerboseErrors(true).
		WithMaxRetries(maxRetriesOnRecoverableFailures)
}

// userAgentHandler returns a http request handler that sets a custom user agent to all aws requests.
func userAgentHandler() request.NamedHandler {
	return request.NamedHandler{
		Name: "UserAgentHandler",
		Fn: func(r *request.Request) {
			userAgent := r.HTTPRequest.Header.Get(userAgentHeader)
			r.HTTPRequest.Header.Set(userAgentHeader,
				fmt.Sprintf("lambdeploy/%s (%s) %s", version.Version, runtime.GOOS, userAgent))
		},
	}
}

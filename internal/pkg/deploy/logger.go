// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package deploy

import (
	"fmt"
	"io"

	"github.com/aws/lambdeploy/internal/pkg/term/color"
	"github.com/aws/lambdeploy/internal/pkg/term/spinner"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Logger reports the progress of a pipeline run.
type Logger interface {
	LogStage(name string)
	LogAPICall(name string, args interface{})
}

// NullLogger discards progress.
type NullLogger struct{}

// LogStage does nothing.
func (NullLogger) LogStage(string) {}

// LogAPICall does nothing.
func (NullLogger) LogAPICall(string, interface{}) {}

type progress interface {
	Start(label string)
	Stop(label string)
}

// ConsoleLogger shows the current stage, and the latest API call made for it, next to a spinner.
type ConsoleLogger struct {
	spinner progress
	stage   string
}

// NewConsoleLogger returns a ConsoleLogger that draws on w.
func NewConsoleLogger(w io.Writer) *ConsoleLogger {
	return &ConsoleLogger{
		spinner: spinner.New(w),
	}
}

// LogStage completes the previous stage and starts showing name as a title.
func (l *ConsoleLogger) LogStage(name string) {
	l.Stop()
	l.stage = cases.Title(language.English).String(name)
	l.spinner.Start(l.stage)
}

// LogAPICall shows the API call next to the current stage.
func (l *ConsoleLogger) LogAPICall(name string, _ interface{}) {
	if l.stage == "" {
		return
	}
	l.spinner.Start(fmt.Sprintf("%s\t%s", l.stage, color.Faint(name)))
}

// Stop completes the current stage, if any.
func (l *ConsoleLogger) Stop() {
	if l.stage == "" {
		return
	}
	l.spinner.Stop(fmt.Sprintf("- %s", l.stage))
	l.stage = ""
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package color provides utilities to globally enable/disable color
// output of the CLI.
package color

import (
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/core"
	"github.com/fatih/color"
)

const colorEnvVar = "COLOR"

var lookupEnv = os.LookupEnv

var (
	cyan               = color.New(color.FgHiCyan)
	whiteBoldUnderline = color.New(color.FgHiWhite, color.Bold, color.Underline)
	magenta            = color.New(color.FgHiMagenta)
	faint              = color.New(color.Faint)
)

// DisableColorBasedOnEnvVar determines whether the CLI, prompts included, will produce color
// output based on the environment variable, COLOR.
func DisableColorBasedOnEnvVar() {
	value, exists := lookupEnv(colorEnvVar)
	if !exists {
		// Follow the color library, which checks whether stdout is a terminal.
		core.DisableColor = color.NoColor
		return
	}
	switch strings.ToLower(value) {
	case "false":
		core.DisableColor = true
		color.NoColor = true
	case "true":
		core.DisableColor = false
		color.NoColor = false
	}
}

// HighlightUserInput colors the string to denote it as an input from the command line, and returns it.
func HighlightUserInput(s string) string {
	return cyan.Sprint(s)
}

// HighlightResource colors the string to denote it as a resource changed by the CLI, and returns it.
func HighlightResource(s string) string {
	return whiteBoldUnderline.Sprint(s)
}

// HighlightCode wraps the string with the ` character, colors it to denote it's a code block, and returns it.
func HighlightCode(s string) string {
	return magenta.Sprintf("`%s`", s)
}

// Faint greys out the string, and returns it.
func Faint(s string) string {
	return faint.Sprint(s)
}

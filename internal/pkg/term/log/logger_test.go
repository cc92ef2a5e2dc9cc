// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	testCases := map[string]struct {
		print func(l *Logger)

		wanted string
	}{
		"Success": {
			print:  func(l *Logger) { l.Success("hello", " world") },
			wanted: fmt.Sprintf("%s hello world", successPrefix),
		},
		"Successln": {
			print:  func(l *Logger) { l.Successln("hello", " world") },
			wanted: fmt.Sprintf("%s hello world\n", successPrefix),
		},
		"Successf": {
			print:  func(l *Logger) { l.Successf("%s %s\n", "hello", "world") },
			wanted: fmt.Sprintf("%s hello world\n", successPrefix),
		},
		"Error": {
			print:  func(l *Logger) { l.Error("hello", " world") },
			wanted: fmt.Sprintf("%s hello world", errorPrefix),
		},
		"Errorln": {
			print:  func(l *Logger) { l.Errorln("hello", " world") },
			wanted: fmt.Sprintf("%s hello world\n", errorPrefix),
		},
		"Errorf": {
			print:  func(l *Logger) { l.Errorf("%s %s\n", "hello", "world") },
			wanted: fmt.Sprintf("%s hello world\n", errorPrefix),
		},
		"Warning": {
			print:  func(l *Logger) { l.Warning("hello", " world") },
			wanted: fmt.Sprintf("%s hello world", warningPrefix),
		},
		"Warningln": {
			print:  func(l *Logger) { l.Warningln("hello", " world") },
			wanted: fmt.Sprintf("%s hello world\n", warningPrefix),
		},
		"Warningf": {
			print:  func(l *Logger) { l.Warningf("%s %s\n", "hello", "world") },
			wanted: fmt.Sprintf("%s hello world\n", warningPrefix),
		},
		"Info": {
			print:  func(l *Logger) { l.Info("hello", " world") },
			wanted: "hello world",
		},
		"Infoln": {
			print:  func(l *Logger) { l.Infoln("hello", "world") },
			wanted: "hello world\n",
		},
		"Infof": {
			print:  func(l *Logger) { l.Infof("%s %s\n", "hello", "world") },
			wanted: "hello world\n",
		},
		"Debug": {
			print:  func(l *Logger) { l.Debug("hello", " world") },
			wanted: "hello world",
		},
		"Debugln": {
			print:  func(l *Logger) { l.Debugln("hello", " world") },
			wanted: "hello world\n",
		},
		"Debugf": {
			print:  func(l *Logger) { l.Debugf("%s %s\n", "hello", "world") },
			wanted: "hello world\n",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// GIVEN
			defer func(prev bool) { color.NoColor = prev }(color.NoColor)
			color.NoColor = true
			b := &strings.Builder{}

			// WHEN
			tc.print(New(b))

			// THEN
			require.Equal(t, tc.wanted, b.String())
		})
	}
}

func TestLogger_Writer(t *testing.T) {
	require.Equal(t, io.Discard, New(nil).Writer())
	require.Equal(t, io.Discard, (&Logger{}).Writer())

	b := &strings.Builder{}
	require.Equal(t, b, New(b).Writer())
}

func TestLogger_ZeroValueDiscards(t *testing.T) {
	var l Logger

	require.NotPanics(t, func() { l.Infoln("hello") })
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"io"
)

// Logger writes leveled messages to an io.Writer.
// The zero value discards its output.
type Logger struct {
	w io.Writer
}

// New creates a new Logger.
func New(w io.Writer) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{
		w: w,
	}
}

// Writer returns the writer that the logger writes to.
func (l *Logger) Writer() io.Writer {
	if l.w == nil {
		return io.Discard
	}
	return l.w
}

// Success writes args prefixed with a "✔ Success!".
func (l *Logger) Success(args ...interface{}) {
	success(l.Writer(), args...)
}

// Successln writes args prefixed with a "✔ Success!" and a new line.
func (l *Logger) Successln(args ...interface{}) {
	successln(l.Writer(), args...)
}

// Successf formats according to the specifier, prefixes the message with a "✔ Success!", and writes it.
func (l *Logger) Successf(format string, args ...interface{}) {
	successf(l.Writer(), format, args...)
}

// Error writes args prefixed with "✘ Error!".
func (l *Logger) Error(args ...interface{}) {
	err(l.Writer(), args...)
}

// Errorln writes args prefixed with a "✘ Error!" and a new line.
func (l *Logger) Errorln(args ...interface{}) {
	errln(l.Writer(), args...)
}

// Errorf formats according to the specifier, prefixes the message with a "✘ Error!", and writes it.
func (l *Logger) Errorf(format string, args ...interface{}) {
	errf(l.Writer(), format, args...)
}

// Warning writes args prefixed with "Note:".
func (l *Logger) Warning(args ...interface{}) {
	warning(l.Writer(), args...)
}

// Warningln writes args prefixed with a "Note:" and a new line.
func (l *Logger) Warningln(args ...interface{}) {
	warningln(l.Writer(), args...)
}

// Warningf formats according to the specifier, prefixes the message with a "Note:", and writes it.
func (l *Logger) Warningf(format string, args ...interface{}) {
	warningf(l.Writer(), format, args...)
}

// Info writes the message.
func (l *Logger) Info(args ...interface{}) {
	info(l.Writer(), args...)
}

// Infoln writes the message with a new line.
func (l *Logger) Infoln(args ...interface{}) {
	infoln(l.Writer(), args...)
}

// Infof formats according to the specifier, and writes the message.
func (l *Logger) Infof(format string, args ...interface{}) {
	infof(l.Writer(), format, args...)
}

// Debug writes the message in grey.
func (l *Logger) Debug(args ...interface{}) {
	debug(l.Writer(), args...)
}

// Debugln writes the message in grey with a new line.
func (l *Logger) Debugln(args ...interface{}) {
	debugln(l.Writer(), args...)
}

// Debugf formats according to the specifier, and writes the message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	debugf(l.Writer(), format, args...)
}

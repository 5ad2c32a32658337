// Package ui provides verbosity-aware terminal output for i3keep.
package ui

import (
	"fmt"
	"io"
	"os"
)

// Level controls how much a Logger prints.
type Level int

const (
	Quiet   Level = iota // errors only
	Normal               // summaries and errors
	Verbose              // per-workspace decisions too
)

// Logger writes level-gated messages. Info and Debug go to stdout,
// errors go to stderr regardless of level.
type Logger struct {
	level Level
	out   io.Writer
	err   io.Writer
}

// New returns a Logger writing to stdout/stderr at the given level.
func New(level Level) *Logger {
	return &Logger{level: level, out: os.Stdout, err: os.Stderr}
}

// NewWithWriters returns a Logger with explicit writers, for tests.
func NewWithWriters(level Level, out, err io.Writer) *Logger {
	return &Logger{level: level, out: out, err: err}
}

// FromFlags resolves the --quiet/--verbose flag pair into a Logger.
func FromFlags(quiet, verbose bool) *Logger {
	switch {
	case quiet:
		return New(Quiet)
	case verbose:
		return New(Verbose)
	default:
		return New(Normal)
	}
}

// Infof prints at Normal and Verbose levels.
func (l *Logger) Infof(format string, args ...interface{}) {
	if l.level >= Normal {
		fmt.Fprintf(l.out, format+"\n", args...)
	}
}

// Debugf prints at Verbose level only.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.level >= Verbose {
		fmt.Fprintf(l.out, format+"\n", args...)
	}
}

// Errorf always prints, to stderr.
func (l *Logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.err, "Error: "+format+"\n", args...)
}

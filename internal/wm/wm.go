// Package wm wraps the i3 window manager behind a narrow client
// interface so the save/restore logic never talks to i3 directly.
package wm

import (
	"errors"
	"fmt"
)

// Rect is an output's pixel geometry as reported by i3.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Workspace is the live state of one workspace at query time.
type Workspace struct {
	Name    string `json:"name"    yaml:"name"`
	Output  string `json:"output"  yaml:"output"`
	Focused bool   `json:"focused" yaml:"focused"`
	Visible bool   `json:"visible" yaml:"visible"`
	Urgent  bool   `json:"urgent"  yaml:"urgent"`
}

// Output is the live state of one physical output at query time.
type Output struct {
	Name   string `json:"name"   yaml:"name"`
	Active bool   `json:"active" yaml:"active"`
	Rect   Rect   `json:"rect"   yaml:"rect"`
}

// Area returns the output's pixel area, the signal used to pick a
// fallback output when a saved one has disappeared.
func (o Output) Area() int {
	return o.Rect.Width * o.Rect.Height
}

// Client is the full capability set the tool needs from a window
// manager. Any transport that can answer these four calls works;
// tests substitute a recording fake.
type Client interface {
	// Workspaces returns all current workspaces. Never cached.
	Workspaces() ([]Workspace, error)

	// Outputs returns all outputs, active or not. Never cached.
	Outputs() ([]Output, error)

	// MoveWorkspace moves the named workspace to the named output.
	MoveWorkspace(name, output string) error

	// FocusWorkspace switches focus to the named workspace.
	FocusWorkspace(name string) error
}

// ErrMsgNotFound means the i3-msg binary is not in PATH.
var ErrMsgNotFound = errors.New("i3-msg not found in PATH (is i3 installed?)")

// ErrNotRunning means i3 is not running or its IPC socket refused us.
var ErrNotRunning = errors.New("i3 is not running or IPC connection failed")

// CommandError means i3-msg ran but the command failed or returned
// output we could not interpret.
type CommandError struct {
	Msg string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("i3-msg failed: %s", e.Msg)
}

// IsCommunicationError reports whether err is any failure to talk to
// the window manager. These map to exit code 2.
func IsCommunicationError(err error) bool {
	var cmdErr *CommandError
	return errors.Is(err, ErrMsgNotFound) ||
		errors.Is(err, ErrNotRunning) ||
		errors.As(err, &cmdErr)
}

// Package model defines the saved workspace layout and its on-disk
// JSON format, which is shared with other i3save-style tools.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// WorkspaceMapping records where one workspace lived at save time.
// Names are compared as strings even when they look numeric.
type WorkspaceMapping struct {
	Name   string `json:"name"   yaml:"name"`
	Output string `json:"output" yaml:"output"`
}

// SavedLayout is the durable artifact: everything restore needs.
// Workspaces keeps the query order from save time for diffability;
// restore does not depend on it. Visible lists the workspace that was
// showing on each output, so restore can bring them back to the front.
type SavedLayout struct {
	Focused    *string            `json:"focused"           yaml:"focused"`
	Visible    []WorkspaceMapping `json:"visible_workspaces,omitempty" yaml:"visible_workspaces,omitempty"`
	Workspaces []WorkspaceMapping `json:"workspaces"        yaml:"workspaces"`
}

// FileError is a filesystem-level failure: missing file, unreadable or
// unwritable path. Maps to exit code 1.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("layout file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// FormatError is a malformed layout file: invalid JSON or a violated
// structural contract. Maps to exit code 1.
type FormatError struct {
	Path string
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid layout file %s: %s", e.Path, e.Msg)
}

// Load reads and validates a saved layout.
func Load(path string) (*SavedLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	// Decode through a shadow struct so a missing "workspaces" key can
	// be told apart from an empty list.
	var raw struct {
		Focused    *string             `json:"focused"`
		Visible    []WorkspaceMapping  `json:"visible_workspaces"`
		Workspaces *[]WorkspaceMapping `json:"workspaces"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &FormatError{Path: path, Msg: err.Error()}
	}
	if raw.Workspaces == nil {
		return nil, &FormatError{Path: path, Msg: `missing "workspaces" key`}
	}

	layout := &SavedLayout{
		Focused:    raw.Focused,
		Visible:    raw.Visible,
		Workspaces: *raw.Workspaces,
	}

	seen := make(map[string]bool, len(layout.Workspaces))
	for _, ws := range layout.Workspaces {
		if ws.Name == "" {
			return nil, &FormatError{Path: path, Msg: "workspace entry with empty name"}
		}
		if seen[ws.Name] {
			return nil, &FormatError{Path: path, Msg: fmt.Sprintf("duplicate workspace name %q", ws.Name)}
		}
		seen[ws.Name] = true
	}

	return layout, nil
}

// Save writes the layout as indented JSON, creating parent directories
// and overwriting any existing file.
func (l *SavedLayout) Save(path string) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return &FileError{Path: path, Err: err}
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &FileError{Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &FileError{Path: path, Err: err}
	}
	return nil
}

// IsFileError reports whether err is any load/save failure, format or
// filesystem. These map to exit code 1.
func IsFileError(err error) bool {
	var fileErr *FileError
	var formatErr *FormatError
	return errors.As(err, &fileErr) || errors.As(err, &formatErr)
}

package model

import (
	"os"
	"path/filepath"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	saved := &SavedLayout{
		Focused: strPtr("1"),
		Visible: []WorkspaceMapping{
			{Name: "1", Output: "DP-2"},
		},
		Workspaces: []WorkspaceMapping{
			{Name: "1", Output: "DP-2"},
			{Name: "music", Output: "eDP-1"},
		},
	}

	if err := saved.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Focused == nil || *loaded.Focused != "1" {
		t.Errorf("focused: got %v, want %q", loaded.Focused, "1")
	}
	if len(loaded.Workspaces) != 2 {
		t.Fatalf("workspaces: got %d, want 2", len(loaded.Workspaces))
	}
	if loaded.Workspaces[0].Name != "1" || loaded.Workspaces[0].Output != "DP-2" {
		t.Errorf("first mapping: got %+v", loaded.Workspaces[0])
	}
	if len(loaded.Visible) != 1 || loaded.Visible[0].Name != "1" {
		t.Errorf("visible: got %+v", loaded.Visible)
	}
}

func TestSave_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "layout.json")
	saved := &SavedLayout{Workspaces: []WorkspaceMapping{{Name: "1", Output: "eDP-1"}}}

	if err := saved.Save(path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not written: %v", err)
	}
}

func TestSave_TrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	saved := &SavedLayout{Workspaces: []WorkspaceMapping{}}

	if err := saved.Save(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		t.Error("saved file should end with a newline")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, ok := err.(*FileError); !ok {
		t.Errorf("expected *FileError, got %T", err)
	}
	if !IsFileError(err) {
		t.Error("IsFileError should be true")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not json at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if _, ok := err.(*FormatError); !ok {
		t.Errorf("expected *FormatError, got %T", err)
	}
}

func TestLoad_MissingWorkspacesKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"focused": "1"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for missing workspaces key")
	}
	if _, ok := err.(*FormatError); !ok {
		t.Errorf("expected *FormatError, got %T", err)
	}
}

func TestLoad_EmptyWorkspacesIsValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, []byte(`{"focused": null, "workspaces": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Focused != nil {
		t.Errorf("focused: got %v, want nil", loaded.Focused)
	}
	if len(loaded.Workspaces) != 0 {
		t.Errorf("workspaces: got %d, want 0", len(loaded.Workspaces))
	}
}

func TestLoad_DuplicateNamesRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.json")
	content := `{"focused": null, "workspaces": [
		{"name": "1", "output": "DP-2"},
		{"name": "1", "output": "eDP-1"}
	]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for duplicate workspace names")
	}
	if _, ok := err.(*FormatError); !ok {
		t.Errorf("expected *FormatError, got %T", err)
	}
}

func TestLoad_NumericNamesStayStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numeric.json")
	content := `{"focused": "10", "workspaces": [{"name": "10", "output": "DP-2"}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Workspaces[0].Name != "10" {
		t.Errorf("name: got %q, want %q", loaded.Workspaces[0].Name, "10")
	}
}

func TestLoad_FileWithoutVisible(t *testing.T) {
	// Hand-written files may omit visible_workspaces entirely.
	path := filepath.Join(t.TempDir(), "novisible.json")
	content := `{"focused": "1", "workspaces": [{"name": "1", "output": "DP-2"}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Visible != nil {
		t.Errorf("visible: got %+v, want nil", loaded.Visible)
	}
}

package layout

import (
	"testing"

	"github.com/wmkit/i3keep/internal/wm"
)

func TestSnapshot_CapturesMappingsInQueryOrder(t *testing.T) {
	client := &fakeClient{
		workspaces: []wm.Workspace{
			{Name: "10", Output: "DP-2"},
			{Name: "music", Output: "eDP-1", Visible: true},
			{Name: "2", Output: "DP-2", Focused: true, Visible: true},
		},
	}

	saved, err := Snapshot(client)
	if err != nil {
		t.Fatal(err)
	}

	wantNames := []string{"10", "music", "2"}
	if len(saved.Workspaces) != len(wantNames) {
		t.Fatalf("workspaces: got %d, want %d", len(saved.Workspaces), len(wantNames))
	}
	for i, name := range wantNames {
		if saved.Workspaces[i].Name != name {
			t.Errorf("workspace %d: got %q, want %q", i, saved.Workspaces[i].Name, name)
		}
	}
	if saved.Focused == nil || *saved.Focused != "2" {
		t.Errorf("focused: got %v, want %q", saved.Focused, "2")
	}
	if len(saved.Visible) != 2 || saved.Visible[0].Name != "music" || saved.Visible[1].Name != "2" {
		t.Errorf("visible: got %+v", saved.Visible)
	}
}

func TestSnapshot_NoFocusedWorkspace(t *testing.T) {
	client := &fakeClient{
		workspaces: []wm.Workspace{{Name: "1", Output: "eDP-1"}},
	}

	saved, err := Snapshot(client)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Focused != nil {
		t.Errorf("focused: got %v, want nil", saved.Focused)
	}
}

func TestSnapshot_EmptyWorkspaceList(t *testing.T) {
	client := &fakeClient{}

	saved, err := Snapshot(client)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Workspaces == nil {
		t.Error("workspaces should be an empty slice, not nil, so the file keeps its workspaces key")
	}
	if len(saved.Workspaces) != 0 {
		t.Errorf("workspaces: got %d, want 0", len(saved.Workspaces))
	}
}

func TestSnapshot_PropagatesQueryError(t *testing.T) {
	client := &fakeClient{wsErr: wm.ErrNotRunning}

	if _, err := Snapshot(client); err != wm.ErrNotRunning {
		t.Errorf("expected ErrNotRunning, got %v", err)
	}
}

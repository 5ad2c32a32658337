// Package layout implements the save and restore operations on top of
// the wm.Client capability.
package layout

import (
	"github.com/wmkit/i3keep/internal/model"
	"github.com/wmkit/i3keep/internal/wm"
)

// Snapshot captures the current workspace-to-output assignment as a
// SavedLayout. One workspace query, no mutation.
func Snapshot(c wm.Client) (*model.SavedLayout, error) {
	workspaces, err := c.Workspaces()
	if err != nil {
		return nil, err
	}

	layout := &model.SavedLayout{
		Workspaces: make([]model.WorkspaceMapping, 0, len(workspaces)),
	}
	for _, ws := range workspaces {
		mapping := model.WorkspaceMapping{Name: ws.Name, Output: ws.Output}
		layout.Workspaces = append(layout.Workspaces, mapping)
		if ws.Visible {
			layout.Visible = append(layout.Visible, mapping)
		}
		if ws.Focused {
			name := ws.Name
			layout.Focused = &name
		}
	}
	return layout, nil
}

package layout

import (
	"errors"

	"github.com/wmkit/i3keep/internal/model"
	"github.com/wmkit/i3keep/internal/ui"
	"github.com/wmkit/i3keep/internal/wm"
)

// ErrNoOutputs means no output is currently active, so there is
// nowhere to place anything.
var ErrNoOutputs = errors.New("no active outputs found")

// Summary counts what a restore did.
type Summary struct {
	Moved   int
	Skipped int
}

// Restore reconciles a saved layout against live state: every saved
// workspace that still exists is moved to its recorded output, or to
// the largest active output when the recorded one is gone. Workspaces
// that no longer exist are skipped. After all moves, the previously
// visible workspaces are brought back to the front of their outputs
// and focus is returned to the saved focused workspace, both only if
// they still exist.
//
// The focus phase runs strictly after every move: focusing first could
// have i3 place a workspace on the wrong output, and the final focused
// output depends on where the target workspace ends up.
//
// The first communication error aborts the remaining commands; the
// returned Summary covers what completed before the failure.
func Restore(c wm.Client, saved *model.SavedLayout, log *ui.Logger) (Summary, error) {
	var sum Summary

	outputs, err := c.Outputs()
	if err != nil {
		return sum, err
	}
	active := make(map[string]bool)
	var fallback string
	var fallbackArea int
	for _, out := range outputs {
		if !out.Active {
			continue
		}
		active[out.Name] = true
		// Strictly-greater keeps the first output on area ties.
		if fallback == "" || out.Area() > fallbackArea {
			fallback = out.Name
			fallbackArea = out.Area()
		}
	}
	if len(active) == 0 {
		return sum, ErrNoOutputs
	}

	workspaces, err := c.Workspaces()
	if err != nil {
		return sum, err
	}
	live := make(map[string]bool, len(workspaces))
	for _, ws := range workspaces {
		live[ws.Name] = true
	}

	for _, ws := range saved.Workspaces {
		if !live[ws.Name] {
			log.Debugf("  workspace %q no longer exists, skipping", ws.Name)
			sum.Skipped++
			continue
		}
		target := ws.Output
		if !active[target] {
			log.Debugf("  output %q not found, using fallback %q", target, fallback)
			target = fallback
		}
		if err := c.MoveWorkspace(ws.Name, target); err != nil {
			return sum, err
		}
		log.Debugf("  moved workspace %q to output %q", ws.Name, target)
		sum.Moved++
	}

	for _, ws := range saved.Visible {
		if !live[ws.Name] {
			log.Debugf("  workspace %q no longer exists, skipping visibility restore", ws.Name)
			continue
		}
		if err := c.FocusWorkspace(ws.Name); err != nil {
			return sum, err
		}
		log.Debugf("  made workspace %q visible on output %q", ws.Name, ws.Output)
	}

	if saved.Focused != nil {
		if live[*saved.Focused] {
			if err := c.FocusWorkspace(*saved.Focused); err != nil {
				return sum, err
			}
			log.Debugf("restored focus to workspace %q", *saved.Focused)
		} else {
			log.Debugf("previously focused workspace %q no longer exists", *saved.Focused)
		}
	}

	return sum, nil
}

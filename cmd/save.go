package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wmkit/i3keep/internal/layout"
)

var saveCmd = &cobra.Command{
	Use:   "save <file>",
	Short: "Save the current workspace layout to a file",
	Long:  "Query i3 for the current workspace-to-output mapping and write it to a file, overwriting any previous contents.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	path := args[0]

	saved, err := layout.Snapshot(newClient())
	if err != nil {
		return err
	}

	log.Debugf("found %d workspace(s)", len(saved.Workspaces))
	for _, ws := range saved.Workspaces {
		log.Debugf("  workspace %q on output %q", ws.Name, ws.Output)
	}
	for _, ws := range saved.Visible {
		log.Debugf("  %q visible on output %q", ws.Name, ws.Output)
	}
	if saved.Focused != nil {
		log.Debugf("focused workspace: %s", *saved.Focused)
	}

	if err := saved.Save(path); err != nil {
		return err
	}

	log.Infof("Saved %d workspace(s) to %s", len(saved.Workspaces), path)
	return nil
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wmkit/i3keep/internal/layout"
	"github.com/wmkit/i3keep/internal/model"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore a saved workspace layout",
	Long: `Read a saved layout and move each workspace back to its recorded
output. Workspaces that no longer exist are skipped; workspaces whose
output is gone are consolidated onto the largest active output. Focus
is restored last.`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	path := args[0]

	log.Debugf("loading workspace layout from %s", path)
	saved, err := model.Load(path)
	if err != nil {
		return err
	}
	log.Debugf("found %d saved workspace(s)", len(saved.Workspaces))

	sum, err := layout.Restore(newClient(), saved, log)
	if err != nil {
		return err
	}

	log.Infof("Restored %d workspace(s), skipped %d", sum.Moved, sum.Skipped)
	return nil
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wmkit/i3keep/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List live workspaces or outputs",
	Long:  "Print the current workspaces (default) or outputs as reported by i3, in yaml or json.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("outputs", false, "List outputs instead of workspaces")
	listCmd.Flags().Bool("active", false, "Only show active outputs")
}

func runList(cmd *cobra.Command, args []string) error {
	client := newClient()

	showOutputs, _ := cmd.Flags().GetBool("outputs")
	activeOnly, _ := cmd.Flags().GetBool("active")

	if showOutputs {
		outputs, err := client.Outputs()
		if err != nil {
			return err
		}
		if activeOnly {
			filtered := outputs[:0]
			for _, out := range outputs {
				if out.Active {
					filtered = append(filtered, out)
				}
			}
			outputs = filtered
		}
		return output.Print(outputs)
	}

	workspaces, err := client.Workspaces()
	if err != nil {
		return err
	}
	return output.Print(workspaces)
}

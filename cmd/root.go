package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/wmkit/i3keep/internal/output"
	"github.com/wmkit/i3keep/internal/ui"
	"github.com/wmkit/i3keep/internal/version"
	"github.com/wmkit/i3keep/internal/wm"
)

// log is the process-wide logger, resolved from the verbosity flags in
// PersistentPreRunE before any subcommand runs.
var log = ui.New(ui.Normal)

var rootCmd = &cobra.Command{
	Use:   "i3keep",
	Short: "Save and restore i3 workspace-to-output mappings",
	Long: `i3keep remembers which workspace lives on which monitor, so that
docking or undocking does not scramble your layout. Save the current
mapping to a file, and restore it after the outputs come back.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and exits with the documented code: 0 success,
// 1 file or format errors, 2 window-manager communication errors.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if wm.IsCommunicationError(err) {
		return 2
	}
	return 1
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress normal output (only show errors)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show detailed output")
	rootCmd.PersistentFlags().String("format", "yaml", "Output format for list results: yaml, json")
	rootCmd.PersistentFlags().Int("timeout", 5, "Timeout in seconds for each i3-msg call")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		quiet, _ := rootCmd.PersistentFlags().GetBool("quiet")
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		if quiet && verbose {
			return fmt.Errorf("--quiet and --verbose are mutually exclusive")
		}
		log = ui.FromFlags(quiet, verbose)

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		return nil
	}
}

// newClient builds the i3-msg client with the configured timeout.
func newClient() wm.Client {
	seconds, _ := rootCmd.PersistentFlags().GetInt("timeout")
	return wm.NewI3Msg(time.Duration(seconds) * time.Second)
}

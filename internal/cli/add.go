package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/projxml/internal/engine"
)

var addNoGlob bool

var addCmd = &cobra.Command{
	Use:   "add <path|glob>...",
	Short: "Add files to the list",
	Long: `Add files to the session's file list.

Relative paths are resolved against the current directory. Arguments containing
glob characters are expanded to matching files; ** matches across directories:

  projxml add 'src/**/*.go' README.md

Files already in the list are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		cwd, err := workingDir()
		if err != nil {
			return err
		}

		result, err := eng.Add(&engine.AddRequest{
			Session: sessionName,
			CWD:     cwd,
			Args:    args,
			Glob:    eng.Settings().ExpandGlobs && !addNoGlob,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		printAddResult(result)
		return nil
	},
}

// printAddResult reports the outcome of add and drop.
func printAddResult(result *engine.AddResult) {
	for _, pattern := range result.Unmatched {
		PrintWarning(fmt.Sprintf("No files match %s", pattern))
	}
	PrintSuccess(fmt.Sprintf("Added %d new file(s)", result.Added))
	PrintInfo(fmt.Sprintf("%s in session %s", PrintCount(result.Total, "file", "files"), result.Session))
}

func init() {
	addCmd.Flags().BoolVar(&addNoGlob, "no-glob", false, "Treat arguments as literal paths")
}

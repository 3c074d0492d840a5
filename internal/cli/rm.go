package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/projxml/internal/engine"
)

var rmCmd = &cobra.Command{
	Use:   "rm <path>...",
	Short: "Remove files from the list",
	Long:  `Remove paths from the session's file list. The files themselves are not touched.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		cwd, err := workingDir()
		if err != nil {
			return err
		}

		result, err := eng.Remove(&engine.RemoveRequest{
			Session: sessionName,
			CWD:     cwd,
			Paths:   args,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if len(result.NotFound) > 0 {
			PrintWarning("Not in the list:")
			PrintList(result.NotFound, 1)
		}
		PrintSuccess(fmt.Sprintf("Removed %s", PrintCount(result.Removed, "file", "files")))
		return nil
	},
}

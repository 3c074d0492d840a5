package cli

import (
	"github.com/spf13/cobra"
)

// clearCmd empties the session's file list.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all files from the list",
	Long: `Empty the session's file list.

Only the list is cleared; saved XML documents and the files themselves are
left alone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Clear(sessionName)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess("All files cleared")
		return nil
	},
}

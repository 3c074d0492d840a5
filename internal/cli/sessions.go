package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List or delete saved sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		names, err := eng.ListSessions()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(names)
		}

		PrintSection("Sessions")
		if len(names) == 0 {
			PrintEmptyState("No sessions found")
			return nil
		}
		PrintList(names, 1)
		return nil
	},
}

var sessionsRmCmd = &cobra.Command{
	Use:   "rm <name>...",
	Short: "Delete saved sessions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		for _, name := range args {
			if err := eng.DeleteSession(name); err != nil {
				return err
			}
			PrintSuccess(fmt.Sprintf("Deleted session %s", name))
		}
		return nil
	},
}

func init() {
	sessionsCmd.AddCommand(sessionsRmCmd)
}

package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List files in the session",
	Long: `List the session's files in the order they were added, with their size and
whether their text will be embedded when saving.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.List(sessionName)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection(fmt.Sprintf("Session %s", result.Session))
		if len(result.Entries) == 0 {
			PrintEmptyState("No files. Use 'projxml add' or 'projxml drop' to add some.")
			return nil
		}

		rows := make([][]string, 0, len(result.Entries))
		for _, entry := range result.Entries {
			size := "-"
			if entry.Exists {
				size = humanize.IBytes(uint64(entry.Size))
			}
			content := "yes"
			if !entry.Embeddable {
				content = "no (" + entry.Reason + ")"
			}
			rows = append(rows, []string{entry.Path, size, content})
		}
		PrintTable([]string{"Path", "Size", "Content"}, rows)

		fmt.Fprintln(cmd.OutOrStdout())
		PrintLabelValue("Files", fmt.Sprintf("%d", len(result.Entries)))
		if result.LastDocument != "" {
			PrintLabelValue("Last document", result.LastDocument)
		}
		return nil
	},
}

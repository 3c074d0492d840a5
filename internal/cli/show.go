package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/projxml/internal/projectdoc"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the XML that save would write",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		doc, err := eng.Show(sessionName)
		if err != nil {
			return err
		}

		return projectdoc.Encode(cmd.OutOrStdout(), doc)
	},
}

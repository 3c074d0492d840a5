package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/projxml/internal/engine"
)

var openDestructive bool

var openCmd = &cobra.Command{
	Use:   "open <file>",
	Short: "Load the file list from an XML project document",
	Long: `Replace the session's file list with the <source> paths listed in an XML
project document. Embedded content is ignored. The root element must be
<project>; documents with any other root, or with text or extra elements
outside it, are rejected.

The document is parsed before the list is replaced, so a broken document
leaves the current list intact. With --destructive the list is cleared first
and stays empty if the document cannot be read.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		cwd, err := workingDir()
		if err != nil {
			return err
		}

		result, err := eng.Open(&engine.OpenRequest{
			Session:     sessionName,
			CWD:         cwd,
			Source:      args[0],
			Destructive: openDestructive,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Loaded %d files from %s", result.Loaded, result.Path))
		return nil
	},
}

func init() {
	openCmd.Flags().BoolVar(&openDestructive, "destructive", false, "Clear the list before reading the document")
}

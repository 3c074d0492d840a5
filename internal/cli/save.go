package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/projxml/internal/engine"
)

var (
	saveMaxContent string
	saveAtomic     bool
)

var saveCmd = &cobra.Command{
	Use:   "save [file]",
	Short: "Save the file list as an XML project document",
	Long: `Write the session's files to an XML project document.

Each file is written as a <document> with its <source> path. The file's text is
embedded as <document_content> when it is valid UTF-8 and smaller than the
content limit (1 MiB unless configured); otherwise only the path is written.

The default file is project.xml; ".xml" is appended when the name has no
extension.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxContent int64
		if saveMaxContent != "" {
			n, err := humanize.ParseBytes(saveMaxContent)
			if err != nil {
				return fmt.Errorf("invalid --max-content %q: %w", saveMaxContent, err)
			}
			if n == 0 {
				return fmt.Errorf("invalid --max-content %q: must be positive", saveMaxContent)
			}
			maxContent = int64(n)
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		cwd, err := workingDir()
		if err != nil {
			return err
		}

		req := &engine.SaveRequest{
			Session:         sessionName,
			CWD:             cwd,
			MaxContentBytes: maxContent,
			Atomic:          saveAtomic,
		}
		if len(args) == 1 {
			req.Dest = args[0]
		}

		result, err := eng.Save(req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Saved XML to %s", result.Path))
		PrintInfo(fmt.Sprintf("%s, %d with content", PrintCount(result.Documents, "document", "documents"), result.WithContent))
		return nil
	},
}

func init() {
	saveCmd.Flags().StringVar(&saveMaxContent, "max-content", "", "Embed only files smaller than this size (e.g. 512KiB, 2MB)")
	saveCmd.Flags().BoolVar(&saveAtomic, "atomic", false, "Write to a temp file and rename it into place")
}

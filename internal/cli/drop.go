package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/projxml/internal/engine"
)

var dropCmd = &cobra.Command{
	Use:   "drop <payload>|-",
	Short: "Add files from a drag-and-drop list",
	Long: `Add files from the list string a drag-and-drop source delivers.

Items are separated by whitespace; items containing spaces are wrapped in
braces or quotes:

  projxml drop '{/home/me/My Notes.txt} /home/me/todo.md'

Pass - to read the payload from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := args[0]
		if payload == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read payload from stdin: %w", err)
			}
			payload = strings.TrimSpace(string(data))
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		cwd, err := workingDir()
		if err != nil {
			return err
		}

		result, err := eng.Drop(&engine.DropRequest{
			Session: sessionName,
			CWD:     cwd,
			Payload: payload,
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

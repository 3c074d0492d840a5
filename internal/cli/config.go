package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print where projxml keeps its data and the settings in effect.

Settings are read from config.yaml in the data directory (~/.projxml unless
PROJXML_ROOT is set). Supported keys:

  maxContentBytes: 1048576   # embed only files smaller than this
  importMode: staged         # or "destructive"
  defaultSession: default
  expandGlobs: true`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, settings, err := loadConfig()
		if err != nil {
			return err
		}

		if jsonOutput {
			out, err := formatJSON(map[string]interface{}{
				"root":     paths.Root,
				"config":   paths.Config,
				"sessions": paths.Sessions,
				"settings": settings,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}

		PrintSection("Paths")
		PrintLabelValue("Root", paths.Root)
		PrintLabelValue("Config", paths.Config)
		PrintLabelValue("Sessions", paths.Sessions)

		data, err := settings.Marshal()
		if err != nil {
			return err
		}
		PrintSection("Settings")
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

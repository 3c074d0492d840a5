package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput  bool
	sessionName string
	verbose     bool

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for projxml.
var rootCmd = &cobra.Command{
	Use:     "projxml",
	Version: "dev",
	Short:   "Collect files into an XML project document",
	Long: `projxml collects a set of local file paths and saves them, together with
the text of each file, as a simple XML project document. Saved documents can be
opened again to restore the file list.

The working file list is kept per session between commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// customHelpFunc renders help with colored group titles. Subcommands are
// listed under their group, with ungrouped ones collected at the end.
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	desc := cmd.Long
	if desc == "" {
		desc = cmd.Short
	}
	if desc != "" {
		help.WriteString(strings.TrimRight(desc, "\n"))
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	fmt.Fprintf(&help, "\n  %s\n", cmd.UseLine())
	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(&help, "  %s [command]\n", cmd.CommandPath())
	}
	help.WriteString("\n")

	width := 0
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() && len(c.Name()) > width {
			width = len(c.Name())
		}
	}

	writeCommands := func(title string, match func(*cobra.Command) bool) {
		var lines []string
		for _, c := range cmd.Commands() {
			if (c.IsAvailableCommand() || c.Name() == "help") && match(c) {
				lines = append(lines, fmt.Sprintf("  %-*s  %s\n", width, c.Name(), c.Short))
			}
		}
		if len(lines) == 0 {
			return
		}
		help.WriteString(title)
		help.WriteString("\n")
		help.WriteString(strings.Join(lines, ""))
		help.WriteString("\n")
	}

	for _, group := range cmd.Groups() {
		id := group.ID
		writeCommands(groupTitleColor.Sprint(group.Title), func(c *cobra.Command) bool { return c.GroupID == id })
	}
	writeCommands(sectionTitleColor.Sprint("Additional Commands:"), func(c *cobra.Command) bool { return c.GroupID == "" })

	if cmd.Example != "" {
		help.WriteString(sectionTitleColor.Sprint("Examples:"))
		help.WriteString("\n")
		help.WriteString(cmd.Example)
		help.WriteString("\n\n")
	}

	if local := cmd.LocalFlags().FlagUsages(); local != "" {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(local)
		help.WriteString("\n")
	}
	if inherited := cmd.InheritedFlags().FlagUsages(); inherited != "" {
		help.WriteString(sectionTitleColor.Sprint("Global Flags:"))
		help.WriteString("\n")
		help.WriteString(inherited)
		help.WriteString("\n")
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())
	}

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

func init() {
	rootCmd.SetHelpFunc(customHelpFunc)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVarP(&sessionName, "session", "s", "", "Session to operate on (default from config, usually \"default\")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostic details to stderr")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "file-list",
		Title: "File List:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "project-documents",
		Title: "Project Documents:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	// CLI & Tooling commands
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the projxml CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Root().Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: "cli-tooling",
		Long: `Generate the autocompletion script for projxml for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	shells := []struct {
		name string
		gen  func(io.Writer) error
	}{
		{"bash", rootCmd.GenBashCompletion},
		{"zsh", rootCmd.GenZshCompletion},
		{"fish", func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) }},
		{"powershell", rootCmd.GenPowerShellCompletionWithDesc},
	}
	for _, shell := range shells {
		gen := shell.gen
		completionCmd.AddCommand(&cobra.Command{
			Use:                   shell.name,
			Short:                 "Generate the autocompletion script for " + shell.name,
			Args:                  cobra.NoArgs,
			DisableFlagsInUseLine: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return gen(cmd.OutOrStdout())
			},
		})
	}
	rootCmd.AddCommand(completionCmd)

	configCmd.GroupID = "cli-tooling"
	sessionsCmd.GroupID = "cli-tooling"
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(sessionsCmd)

	// File List commands
	addCmd.GroupID = "file-list"
	dropCmd.GroupID = "file-list"
	rmCmd.GroupID = "file-list"
	clearCmd.GroupID = "file-list"
	lsCmd.GroupID = "file-list"
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(lsCmd)

	// Project Documents commands
	saveCmd.GroupID = "project-documents"
	openCmd.GroupID = "project-documents"
	showCmd.GroupID = "project-documents"
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(showCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

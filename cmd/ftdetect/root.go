package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// These are set during build time using -ldflags
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	cfgFile     string
	profileName string
	verbose     bool
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:   "ftdetect",
		Short: "Determines the file type of files and source trees.",
		Long: `ftdetect names the type of a file the way an editor would: from its
path, its name, a shebang, or its content.

It features:
  - A staged detection pipeline with content heuristics.
  - Per-type breakdowns of whole directory trees.
  - Content-based caching for fast repeated scans.
  - Git integration to scan only changed files.
  - Watch mode re-scanning on change.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.SetVersionTemplate(`{{.Name}} version {{.Version}}` + "\n")

	rootCmd.PersistentFlags().StringVar(&g.cfgFile, "config", "", "Configuration file path (default is search standard locations like ., $HOME/.config/ftdetect/)")
	rootCmd.PersistentFlags().StringVar(&g.profileName, "profile", "", "Name of configuration profile to use")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable verbose (debug) logging output (disables TUI)")

	rootCmd.AddCommand(newScanCmd(g), newDetectCmd(g), newTypesCmd())
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// Package cli provides the command-line interface for lectio.
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lectio/lectio-go/internal/config"
)

var (
	// Colors for diagnostics; stdout carries data only
	infoColor = color.New(color.FgCyan)
	warnColor = color.New(color.FgYellow)
)

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Every command reads the same Config,
// filled in from flags.
func NewRootCmd() *cobra.Command {
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:   "lectio",
		Short: "Read scripture from OpenLP bible databases",
		Long: `lectio - a reader for OpenLP bible databases

Each version is a SQLite store at <data-dir>/bibles/<VERSION>.sqlite.
The data directory defaults to $HOME/.local/share/openlp and can be
overridden with --data-dir or the ` + config.DataDirEnv + ` environment variable.`,
		Example: `  # List the books of the default version (KJV)
  lectio bible books

  # Read a single verse from another version
  lectio bible -v ASV verse John 3 16

  # Read chapters 1 to 3 of Genesis
  lectio bible range Genesis 1-3

  # Read verses 1-5 and 14 of John 1, exported as CSV
  lectio bible range John 1 1-5,14 -o john.csv`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.DataDir, "data-dir", config.DefaultDataDir(), "OpenLP data directory")
	rootCmd.PersistentFlags().BoolVar(&cfg.Verbose, "verbose", false, "Print diagnostics to stderr")

	rootCmd.AddCommand(newBibleCmd(cfg))

	return rootCmd
}

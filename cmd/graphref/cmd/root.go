// Package cmd implements the graphref CLI commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/goplotly/graphref"
	"github.com/goplotly/graphref/logger"
)

var (
	domain      string
	settingsDir string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "graphref",
	Short: "Inspect and manage the plotly graph reference",
	Long: `graphref resolves the plotly graph reference (the JSON schema of all
valid graph object types) from the local cache or the configured
plotly domain, and prints the lookup tables derived from it.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&domain, "domain", "", "plotly domain to fetch the schema from")
	rootCmd.PersistentFlags().StringVar(&settingsDir, "plotly-dir", "", "settings directory (default: ~/.plotly)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func loadOptions() []graphref.Option {
	opts := []graphref.Option{}
	if domain != "" {
		opts = append(opts, graphref.WithDomain(domain))
	}
	if settingsDir != "" {
		opts = append(opts, graphref.WithSettingsDir(settingsDir))
	}
	if verbose {
		opts = append(opts, graphref.WithLogLevel(logger.LevelDebug))
	}
	return opts
}

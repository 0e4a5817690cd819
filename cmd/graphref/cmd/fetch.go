package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goplotly/graphref/loader"
	"github.com/goplotly/graphref/logger"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the graph reference and store it locally",
	Long: `Downloads the graph reference from the plotly domain, ignoring any
cached copy, and writes it to the local settings directory.`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	opts := []loader.Option{}
	if settingsDir != "" {
		opts = append(opts, loader.WithSettingsDir(settingsDir))
	}
	if verbose {
		log := logger.Default()
		log.SetLevel(logger.LevelDebug)
		opts = append(opts, loader.WithLogger(log))
	}
	l := loader.New(opts...)

	fetchDomain := domain
	if fetchDomain == "" {
		fetchDomain = l.Store().Domain()
	}

	doc, err := l.Fetch(cmd.Context(), fetchDomain)
	if err != nil {
		return err
	}
	doc = loader.Normalize(doc)

	store := l.Store()
	if err := store.EnsureLocalFiles(); err != nil {
		return fmt.Errorf("cannot prepare settings directory %s: %w", store.Dir(), err)
	}
	if err := store.SaveJSON(store.GraphReferenceFile(), doc); err != nil {
		return fmt.Errorf("cannot write graph reference: %w", err)
	}

	fmt.Printf("wrote graph reference to %s\n", store.GraphReferenceFile())
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goplotly/graphref"
)

var showPaths bool

var objectsCmd = &cobra.Command{
	Use:   "objects",
	Short: "List the registered graph object names",
	RunE:  runObjects,
}

func init() {
	objectsCmd.Flags().BoolVar(&showPaths, "paths", false, "show document paths for each object")
	rootCmd.AddCommand(objectsCmd)
}

func runObjects(cmd *cobra.Command, args []string) error {
	ref, err := graphref.Load(cmd.Context(), loadOptions()...)
	if err != nil {
		return err
	}

	for _, name := range ref.ObjectNames() {
		if !showPaths {
			fmt.Println(name)
			continue
		}

		paths, _ := ref.PathsFor(name)
		if len(paths) == 0 {
			fmt.Printf("%s\t(by name)\n", name)
			continue
		}
		for _, path := range paths {
			fmt.Printf("%s\t%s\n", name, path)
		}
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goplotly/graphref"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List generated class names and their object names",
	RunE:  runClasses,
}

func init() {
	rootCmd.AddCommand(classesCmd)
}

func runClasses(cmd *cobra.Command, args []string) error {
	ref, err := graphref.Load(cmd.Context(), loadOptions()...)
	if err != nil {
		return err
	}

	for _, className := range ref.ClassNames() {
		objectName, _ := ref.ObjectNameFor(className)
		fmt.Printf("%s\t%s\n", className, objectName)
	}
	return nil
}

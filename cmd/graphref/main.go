package main

import (
	"os"

	"github.com/goplotly/graphref/cmd/graphref/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

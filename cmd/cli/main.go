// Package main is the entry point for the event-economics CLI.
package main

import (
	"os"

	"event-economics/cmd/cli/cmd"
	"event-economics/internal/logging"
)

func main() {
	defer logging.Sync()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

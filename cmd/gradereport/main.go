package main

import (
	"os"

	"github.com/wonny/gradereport/cmd/gradereport/commands"
)

// main is the entry point for the gradereport CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

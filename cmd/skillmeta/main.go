// Package main is the entry point for the skillmeta CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/skillmeta/cmd/skillmeta/commands"
	"github.com/thoreinstein/skillmeta/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", exitErr.Suggestion)
		}
		os.Exit(errors.ExitCode(err))
	}
}

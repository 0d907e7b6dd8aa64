package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/codingconcepts/relstats/commands"
	"github.com/codingconcepts/relstats/models"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

// version is set via ldflags during build.
var version = "dev"

func main() {
	cmd := commands.NewRootCmd(version)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var usage *models.UsageError
		if errors.As(err, &usage) {
			fmt.Fprint(os.Stderr, cmd.UsageString())
			os.Exit(exitUsage)
		}
		os.Exit(exitFailure)
	}
}

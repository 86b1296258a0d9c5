// validate-docs - Structured Documentation Linting

package main

import (
	"os"

	"github.com/ariel-frischer/validate-docs/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}

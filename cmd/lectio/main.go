// lectio - a command-line reader for OpenLP bible databases.
//
// It lists books, prints single verses, and prints chapter and verse
// ranges from a version's SQLite store.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/lectio/lectio-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		_, _ = errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

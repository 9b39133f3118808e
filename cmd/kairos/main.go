// Command kairos is the entry point for the Kairos agenda.
package main

import (
	"fmt"
	"os"

	"github.com/TomasUhiaOtero/Kairos/internal/app"
	"github.com/TomasUhiaOtero/Kairos/internal/cli"
)

// version is set via -ldflags at build time.
var version = "dev"

func main() {
	container, err := app.New(app.Options{
		Notifier: &cli.ConsoleNotifier{Out: os.Stderr},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(container, version)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

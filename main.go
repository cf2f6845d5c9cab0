// Command google-playwright-tests runs the Google search smoke scenario
// once against a live browser and reports per-step outcomes. The real
// test suite lives under tests/e2e; this entry point exists for quick
// local debugging of the page objects.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/cesarrmg08/google-playwright-tests/infrastructure/config"
	"github.com/cesarrmg08/google-playwright-tests/presentation/terminal"
)

var (
	app       = kingpin.New("google-playwright-tests", "Search UI smoke runner")
	query     = app.Flag("query", "Search query to run").Short('q').String()
	headless  = app.Flag("headless", "Run the browser headless").Default("true").Bool()
	backend   = app.Flag("backend", "Browser backend (playwright or selenium)").String()
	artifacts = app.Flag("artifacts", "Artifacts directory").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	settings.Headless = *headless
	if *backend != "" {
		settings.Backend = config.Backend(*backend)
	}
	if *artifacts != "" {
		settings.ArtifactsDir = *artifacts
	}

	console, err := terminal.NewConsole(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer console.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := console.Run(ctx, *query); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		console.Close()
		os.Exit(1)
	}
}

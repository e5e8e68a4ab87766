// Where: cmd/stripe-notifier/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/app"
	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/generator"
	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/provisioner"
)

// buildDependencies constructs the runtime dependencies for the CLI.
func buildDependencies() app.Dependencies {
	return app.Dependencies{
		Out:    os.Stdout,
		Loader: generator.Load,
		Runner: provisioner.New(),
	}
}

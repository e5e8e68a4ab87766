// Where: cmd/stripe-notifier/main.go
// What: CLI entrypoint.
// Why: Execute notifier commands with configured dependencies.
package main

import (
	"os"

	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}

// Where: internal/app/preview.go
// What: preview command handler.
// Why: Summarize the composed resources without emitting a template.
package app

import (
	"fmt"
	"io"

	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/generator"
	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/notifier"
	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/preview"
)

func runPreview(cli CLI, deps Dependencies, out io.Writer) int {
	m, err := loadManifest(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	composed, err := notifier.New(m.Name, generator.ToConfig(m))
	if err != nil {
		return exitWithError(out, err)
	}

	rendered, err := preview.Render(m, composed)
	if err != nil {
		return exitWithError(out, err)
	}
	fmt.Fprintln(out, rendered)
	return 0
}

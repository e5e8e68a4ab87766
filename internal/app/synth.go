// Where: internal/app/synth.go
// What: synth command handler.
// Why: Emit the composed template as JSON or YAML.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/generator"
	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/manifest"
	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/ui"
)

func runSynth(cli CLI, deps Dependencies, out io.Writer) int {
	m, err := loadManifest(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	template, err := generator.Generate(m)
	if err != nil {
		return exitWithError(out, err)
	}

	var rendered []byte
	switch cli.Synth.Format {
	case "yaml":
		rendered, err = template.YAML()
	default:
		rendered, err = template.JSON()
	}
	if err != nil {
		return exitWithError(out, err)
	}

	if cli.Synth.Output == "" {
		fmt.Fprintln(out, string(rendered))
		return 0
	}
	if err := os.WriteFile(cli.Synth.Output, rendered, 0o644); err != nil {
		return exitWithError(out, fmt.Errorf("write template: %w", err))
	}
	ui.New(out).Success(fmt.Sprintf("template written to %s", cli.Synth.Output))
	return 0
}

func loadManifest(cli CLI, deps Dependencies) (manifest.Notifier, error) {
	loader := deps.Loader
	if loader == nil {
		loader = generator.Load
	}
	return loader(cli.Config)
}

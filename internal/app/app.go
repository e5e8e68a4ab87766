// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/manifest"
	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/provisioner"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This enables swapping implementations in tests.
type Dependencies struct {
	Out       io.Writer
	Loader    func(path string) (manifest.Notifier, error)
	Runner    Provisioner
	Confirmer func(message string) (bool, error)
}

// Provisioner applies a resolved plan to a live endpoint.
type Provisioner interface {
	Apply(ctx context.Context, plan provisioner.Plan) error
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Config  string `short:"c" default:"notifier.yml" help:"Path to the notifier manifest"`
	EnvFile string `name:"env-file" help:"Path to .env file"`

	Synth     SynthCmd     `cmd:"" help:"Synthesize the CloudFormation template"`
	Preview   PreviewCmd   `cmd:"" help:"Show a summary of the composed resources"`
	Provision ProvisionCmd `cmd:"" help:"Apply the rule and topic policy through the AWS APIs"`
	Version   VersionCmd   `cmd:"" help:"Show version information"`
}

type SynthCmd struct {
	Output string `short:"o" help:"Write the template to a file instead of stdout"`
	Format string `default:"json" enum:"json,yaml" help:"Template output format"`
}

type PreviewCmd struct{}

type ProvisionCmd struct {
	RuleName string `name:"rule-name" default:"stripe-event-notifier" help:"EventBridge rule name"`
	Yes      bool   `short:"y" help:"Skip confirmation prompt"`
}

type VersionCmd struct{}

// Run parses the arguments and dispatches to the matching command
// handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	handlers := map[string]func(CLI, Dependencies, io.Writer) int{
		"synth":     runSynth,
		"preview":   runPreview,
		"provision": runProvision,
		"version":   runVersion,
	}
	if handler, ok := handlers[ctx.Command()]; ok {
		return handler(cli, deps, out)
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

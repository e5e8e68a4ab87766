// Where: internal/app/provision.go
// What: provision command handler.
// Why: Apply the composed resources directly when no CloudFormation deploy is wanted.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/generator"
	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/provisioner"
	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/ui"
)

func runProvision(cli CLI, deps Dependencies, out io.Writer) int {
	m, err := loadManifest(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	plan, err := provisioner.PlanFrom(cli.Provision.RuleName, generator.ToConfig(m))
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	console.Header("🔔", "Provisioning Stripe event notifier")
	console.Item("Rule", plan.RuleName)
	console.Item("Bus", plan.BusName)
	console.Item("Topic", plan.TopicArn)

	if !cli.Provision.Yes {
		confirm := deps.Confirmer
		if confirm == nil {
			confirm = confirmPrompt
		}
		ok, err := confirm(fmt.Sprintf("Apply rule %q and update the topic policy?", plan.RuleName))
		if err != nil {
			return exitWithError(out, err)
		}
		if !ok {
			console.Info("aborted")
			return 1
		}
	}

	runner := deps.Runner
	if runner == nil {
		runner = provisioner.New()
	}
	if err := runner.Apply(context.Background(), plan); err != nil {
		return exitWithError(out, err)
	}
	console.Success("notifier provisioned")
	return 0
}

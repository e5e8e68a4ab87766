// Where: internal/provisioner/provisioner.go
// What: Apply a notifier plan through the EventBridge and SNS APIs.
// Why: Provision the three resources directly when no CloudFormation deploy is wanted.
package provisioner

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Runner applies notifier plans. Zero-value fields fall back to stdout
// and the real AWS client factory.
type Runner struct {
	Out     io.Writer
	Clients ClientFactory
}

// New returns a Runner wired to the AWS SDK.
func New() *Runner {
	return &Runner{
		Out:     os.Stdout,
		Clients: awsClientFactory{},
	}
}

// Apply creates or updates the rule, merges the publish grant into the
// topic policy, and binds the target. Steps run in that order because the
// policy condition needs the rule ARN.
func (r *Runner) Apply(ctx context.Context, plan Plan) error {
	if r == nil {
		return fmt.Errorf("provisioner is nil")
	}
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	clients := r.Clients
	if clients == nil {
		return fmt.Errorf("client factory not configured")
	}

	events, err := clients.Events(ctx)
	if err != nil {
		return fmt.Errorf("build eventbridge client: %w", err)
	}
	ruleArn, err := events.PutRule(ctx, RulePut{
		Name:         plan.RuleName,
		Description:  plan.Description,
		EventBusName: plan.BusName,
		EventPattern: plan.EventPattern,
		State:        "ENABLED",
	})
	if err != nil {
		return fmt.Errorf("put rule %s: %w", plan.RuleName, err)
	}
	fmt.Fprintf(out, "rule %s ready (%s)\n", plan.RuleName, ruleArn)

	sns, err := clients.SNS(ctx)
	if err != nil {
		return fmt.Errorf("build sns client: %w", err)
	}
	existing, err := sns.GetTopicPolicy(ctx, plan.TopicArn)
	if err != nil {
		return fmt.Errorf("read topic policy: %w", err)
	}
	merged, err := mergeTopicPolicy(existing, plan, ruleArn)
	if err != nil {
		return fmt.Errorf("merge topic policy: %w", err)
	}
	if err := sns.SetTopicPolicy(ctx, plan.TopicArn, merged); err != nil {
		return fmt.Errorf("set topic policy: %w", err)
	}
	fmt.Fprintf(out, "topic policy updated (%s)\n", plan.StatementID)

	if err := events.PutTargets(ctx, TargetPut{
		RuleName:     plan.RuleName,
		EventBusName: plan.BusName,
		TargetID:     "Target0",
		Arn:          plan.TopicArn,
		PathsMap:     plan.Transform.InputPathsMap,
		Template:     plan.Transform.InputTemplate,
	}); err != nil {
		return fmt.Errorf("put targets for %s: %w", plan.RuleName, err)
	}
	fmt.Fprintf(out, "target bound to %s\n", plan.TopicArn)

	return nil
}

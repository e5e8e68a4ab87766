// Where: internal/provisioner/plan.go
// What: Literal-reference apply plan derived from a notifier configuration.
// Why: Direct API calls need concrete names and ARNs, not template intrinsics.
package provisioner

import (
	"encoding/json"
	"fmt"

	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/cfn"
	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/notifier"
)

// DefaultRuleName is used when the caller does not name the rule.
const DefaultRuleName = "stripe-event-notifier"

// Plan is everything Apply needs, resolved to literal values.
type Plan struct {
	RuleName     string
	Description  string
	BusName      string
	EventPattern string
	TopicArn     string
	StatementID  string
	Transform    cfn.InputTransformer
}

// PlanFrom validates the configuration and resolves it into an apply
// plan. Bus and topic must be literal references; a config built around
// same-template logical IDs has nothing to apply against.
func PlanFrom(ruleName string, cfg notifier.Config) (Plan, error) {
	if err := notifier.Validate(cfg); err != nil {
		return Plan{}, err
	}
	busName, ok := cfg.Bus.LiteralName()
	if !ok {
		return Plan{}, fmt.Errorf("event bus must be a literal name for direct provisioning")
	}
	topicArn, ok := cfg.Topic.LiteralArn()
	if !ok {
		return Plan{}, fmt.Errorf("topic must be a literal ARN for direct provisioning")
	}
	if ruleName == "" {
		ruleName = DefaultRuleName
	}

	pattern, err := json.Marshal(notifier.BuildPattern(cfg))
	if err != nil {
		return Plan{}, fmt.Errorf("marshal event pattern: %w", err)
	}
	transform, err := notifier.BuildTransform(cfg)
	if err != nil {
		return Plan{}, fmt.Errorf("build message transform: %w", err)
	}

	return Plan{
		RuleName:     ruleName,
		Description:  notifier.RuleDescription,
		BusName:      busName,
		EventPattern: string(pattern),
		TopicArn:     topicArn,
		StatementID:  "AllowPublishFromRule-" + ruleName,
		Transform:    transform,
	}, nil
}

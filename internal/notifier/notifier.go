// Where: internal/notifier/notifier.go
// What: Compose the rule, topic-policy grant, and delivery target.
// Why: One construct declares all three resources or none of them.
package notifier

import (
	"fmt"

	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/cfn"
	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/transformer"
)

// DefaultID is the logical-ID prefix used when the caller passes none.
const DefaultID = "StripeEventNotifier"

// RuleDescription is the fixed description attached to the composed rule.
const RuleDescription = "Forward Stripe webhook events from the partner event bus to the SNS topic"

const (
	publishAction  = "sns:Publish"
	eventsService  = "events.amazonaws.com"
	ruleTargetID   = "Target0"
	sourceArnKey   = "aws:SourceArn"
	arnEqualsKey   = "ArnEquals"
	ruleStateValue = "ENABLED"
)

// Notifier holds the composed resource declarations. All fields are built
// once by New and never mutated afterwards.
type Notifier struct {
	RuleID   string
	PolicyID string
	Rule     cfn.EventsRule
	Policy   cfn.SNSTopicPolicy
}

// New validates the configuration and composes the three declarations.
// Validation failures return a single aggregated ConfigurationError; a
// message body that cannot be serialized fails composition immediately
// and nothing partial is returned.
func New(id string, cfg Config) (*Notifier, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	if id == "" {
		id = DefaultID
	}
	ruleID := id + "Rule"
	policyID := id + "TopicPolicy"

	transform, err := BuildTransform(cfg)
	if err != nil {
		return nil, fmt.Errorf("build message transform: %w", err)
	}

	rule := cfn.EventsRule{
		Description:  RuleDescription,
		EventBusName: cfg.Bus.Value(),
		EventPattern: BuildPattern(cfg),
		State:        ruleStateValue,
		Targets: []cfn.RuleTarget{
			{
				ID:               ruleTargetID,
				Arn:              cfg.Topic.Value(),
				InputTransformer: &transform,
			},
		},
	}

	policy := cfn.SNSTopicPolicy{
		PolicyDocument: cfn.PolicyDocument{
			Version:   cfn.PolicyVersion,
			Statement: []cfn.PolicyStatement{PublishGrant(ruleID, cfg.Topic.Value(), cfn.GetAtt{LogicalID: ruleID, Attribute: "Arn"})},
		},
		Topics: []any{cfg.Topic.Value()},
	}

	return &Notifier{
		RuleID:   ruleID,
		PolicyID: policyID,
		Rule:     rule,
		Policy:   policy,
	}, nil
}

// BuildPattern derives the event pattern: a prefix match on the Stripe
// partner source namespace plus an exact-membership detail-type list in
// caller order. The list is copied but never sorted or deduplicated so
// the emitted description stays diff-stable.
func BuildPattern(cfg Config) *cfn.EventPattern {
	detailTypes := make([]string, len(cfg.EventTypes))
	copy(detailTypes, cfg.EventTypes)
	return &cfn.EventPattern{
		Source:     []any{cfn.SourcePrefix{Prefix: StripeEventSource}},
		DetailType: detailTypes,
	}
}

// BuildTransform invokes the message body template exactly once with the
// field-extraction helper and serializes the result. Errors raised by the
// caller-supplied function propagate unmodified.
func BuildTransform(cfg Config) (cfn.InputTransformer, error) {
	if cfg.MessageBody == nil {
		return cfn.InputTransformer{}, fmt.Errorf("message body template function is required")
	}
	body := cfg.MessageBody(EventField{})
	built, err := transformer.Build(body)
	if err != nil {
		return cfn.InputTransformer{}, err
	}
	return cfn.InputTransformer{
		InputPathsMap: built.PathsMap,
		InputTemplate: built.Template,
	}, nil
}

// PublishGrant is the single allow statement for the topic policy:
// events.amazonaws.com may publish to this topic only when the request
// originates from the composed rule. Without the source-ARN condition any
// rule in the account could leverage the service principal's publish
// right against this topic.
func PublishGrant(ruleID string, topicArn any, ruleArn any) cfn.PolicyStatement {
	return cfn.PolicyStatement{
		Sid:       "AllowPublishFrom" + ruleID,
		Effect:    "Allow",
		Principal: cfn.ServicePrincipal{Service: eventsService},
		Action:    publishAction,
		Resource:  topicArn,
		Condition: map[string]map[string]any{
			arnEqualsKey: {sourceArnKey: ruleArn},
		},
	}
}

// Attach appends the composed rule and topic policy to a template.
func (n *Notifier) Attach(t *cfn.Template) error {
	if err := t.Add(n.RuleID, cfn.Resource{Type: cfn.EventsRuleType, Properties: n.Rule}); err != nil {
		return err
	}
	if err := t.Add(n.PolicyID, cfn.Resource{Type: cfn.SNSTopicPolicyType, Properties: n.Policy}); err != nil {
		return err
	}
	return nil
}

// Synthesize composes a notifier and returns it as a standalone template.
func Synthesize(id string, cfg Config) (*cfn.Template, error) {
	n, err := New(id, cfg)
	if err != nil {
		return nil, err
	}
	t := cfn.NewTemplate("Stripe webhook event notifier")
	if err := n.Attach(t); err != nil {
		return nil, err
	}
	return t, nil
}

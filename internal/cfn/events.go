// Where: internal/cfn/events.go
// What: Property types for AWS::Events::Rule.
// Why: Keep the rule declaration typed instead of hand-built maps.
package cfn

// EventsRuleType is the CloudFormation resource type for EventBridge rules.
const EventsRuleType = "AWS::Events::Rule"

// EventsRule captures the subset of AWS::Events::Rule properties the
// notifier declares.
type EventsRule struct {
	Description  string        `json:"Description,omitempty"`
	EventBusName any           `json:"EventBusName,omitempty"`
	EventPattern *EventPattern `json:"EventPattern"`
	State        string        `json:"State,omitempty"`
	Targets      []RuleTarget  `json:"Targets,omitempty"`
}

// EventPattern is an EventBridge content filter. Source entries may be
// plain strings (exact match) or SourcePrefix (prefix match).
type EventPattern struct {
	Source     []any    `json:"source,omitempty"`
	DetailType []string `json:"detail-type,omitempty"`
}

// SourcePrefix is a prefix matcher inside an event pattern.
type SourcePrefix struct {
	Prefix string `json:"prefix"`
}

// RuleTarget is a delivery target attached to a rule.
type RuleTarget struct {
	ID               string            `json:"Id"`
	Arn              any               `json:"Arn"`
	InputTransformer *InputTransformer `json:"InputTransformer,omitempty"`
}

// InputTransformer reshapes the matched event before delivery.
// InputPathsMap names JSON paths into the event; InputTemplate is the
// message body with <key> placeholders resolved per delivered event.
type InputTransformer struct {
	InputPathsMap map[string]string `json:"InputPathsMap,omitempty"`
	InputTemplate string            `json:"InputTemplate"`
}

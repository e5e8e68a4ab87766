// Where: internal/manifest/notifier.go
// What: Declarative notifier manifest types.
// Why: Describe the notifier in a YAML file without parser-specific dependencies.
package manifest

// Notifier is the desired state of one Stripe event notifier.
// The generator layer maps this onto the construct configuration.
type Notifier struct {
	// Name becomes the logical-ID prefix of the composed resources.
	Name string `json:"Name,omitempty" yaml:"Name,omitempty"`
	// EventBus is the partner event bus name or ARN.
	EventBus string `json:"EventBus,omitempty" yaml:"EventBus,omitempty"`
	// Topic is the destination SNS topic ARN.
	Topic string `json:"Topic,omitempty" yaml:"Topic,omitempty"`
	// Events lists Stripe event type names in the order they should
	// appear in the rule.
	Events []string `json:"Events,omitempty" yaml:"Events,omitempty"`
	// Message is the delivered message shape. String values starting
	// with "$" are event paths resolved at delivery time; "$$" escapes
	// a literal leading dollar.
	Message map[string]any `json:"Message,omitempty" yaml:"Message,omitempty"`
}

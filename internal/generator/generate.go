// Where: internal/generator/generate.go
// What: Map a manifest onto the construct configuration and synthesize it.
// Why: Let the CLI drive the same composition path as library callers.
package generator

import (
	"strings"

	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/cfn"
	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/manifest"
	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/notifier"
)

// ToConfig maps a parsed manifest onto the construct configuration.
// Missing manifest fields map to zero-value config fields so the construct
// validator reports every omission in one aggregated error.
func ToConfig(m manifest.Notifier) notifier.Config {
	cfg := notifier.Config{}
	if m.EventBus != "" {
		cfg.Bus = notifier.BusFromName(m.EventBus)
	}
	if m.Topic != "" {
		cfg.Topic = notifier.TopicFromArn(m.Topic)
	}
	if len(m.Events) > 0 {
		cfg.EventTypes = make([]string, len(m.Events))
		copy(cfg.EventTypes, m.Events)
	}
	if m.Message != nil {
		message := m.Message
		cfg.MessageBody = func(field notifier.EventField) any {
			return messageValue(field, message)
		}
	}
	return cfg
}

// messageValue rewrites manifest message values into the composition
// form: strings starting with "$" become extraction tokens, "$$" escapes
// a literal leading dollar, everything else passes through as a literal.
func messageValue(field notifier.EventField, value any) any {
	switch typed := value.(type) {
	case string:
		if strings.HasPrefix(typed, "$$") {
			return typed[1:]
		}
		if strings.HasPrefix(typed, "$") {
			return field.FromPath(typed)
		}
		return typed
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, element := range typed {
			out[key] = messageValue(field, element)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, element := range typed {
			out[i] = messageValue(field, element)
		}
		return out
	default:
		return value
	}
}

// Generate synthesizes the CloudFormation template described by a manifest.
func Generate(m manifest.Notifier) (*cfn.Template, error) {
	return notifier.Synthesize(m.Name, ToConfig(m))
}

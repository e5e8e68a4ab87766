// Where: internal/notifier/validate.go
// What: Configuration validation with aggregated violations.
// Why: A partial deploy with one bad field wastes a full provisioning cycle, so report everything at once.
package notifier

import (
	"fmt"
	"strings"
)

// ConfigurationError carries every violated required-field constraint of a
// single validation pass.
type ConfigurationError struct {
	Violations []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid notifier configuration:\n%s", strings.Join(e.Violations, "\n"))
}

// Validate checks all four required fields and returns a single error
// listing every violation, one per line. It never stops at the first
// missing field and has no side effects on success.
func Validate(cfg Config) error {
	var violations []string
	if cfg.Bus.isZero() {
		violations = append(violations, "eventBus: an event bus reference is required")
	}
	if cfg.Topic.isZero() {
		violations = append(violations, "topic: an SNS topic reference is required")
	}
	if len(cfg.EventTypes) == 0 {
		violations = append(violations, "events: at least one Stripe event type is required")
	}
	if cfg.MessageBody == nil {
		violations = append(violations, "messageBody: a message body template function is required")
	}
	if len(violations) > 0 {
		return &ConfigurationError{Violations: violations}
	}
	return nil
}

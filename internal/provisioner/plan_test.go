// Where: internal/provisioner/plan_test.go
// What: Tests for plan resolution.
// Why: Direct apply needs every reference resolved to a literal.
package provisioner

import (
	"strings"
	"testing"

	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/notifier"
)

func planConfig() notifier.Config {
	return notifier.Config{
		Bus:        notifier.BusFromName("aws.partner/stripe.com/acct_123"),
		Topic:      notifier.TopicFromArn("arn:aws:sns:us-east-1:123456789012:stripe-events"),
		EventTypes: []string{"payment_intent.succeeded", "customer.created"},
		MessageBody: func(field notifier.EventField) any {
			return map[string]any{"message": field.DetailType()}
		},
	}
}

func TestPlanFrom(t *testing.T) {
	plan, err := PlanFrom("my-notifier", planConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if plan.RuleName != "my-notifier" {
		t.Fatalf("unexpected rule name %q", plan.RuleName)
	}
	if plan.BusName != "aws.partner/stripe.com/acct_123" {
		t.Fatalf("unexpected bus %q", plan.BusName)
	}
	if !strings.Contains(plan.EventPattern, `"prefix":"aws.partner/stripe.com"`) {
		t.Fatalf("pattern is not a prefix match: %s", plan.EventPattern)
	}
	if !strings.Contains(plan.EventPattern, `"payment_intent.succeeded","customer.created"`) {
		t.Fatalf("pattern lost event order: %s", plan.EventPattern)
	}
	if plan.StatementID != "AllowPublishFromRule-my-notifier" {
		t.Fatalf("unexpected statement ID %q", plan.StatementID)
	}
	if plan.Transform.InputTemplate != `{"message":<detail-type>}` {
		t.Fatalf("unexpected transform %s", plan.Transform.InputTemplate)
	}
}

func TestPlanFromDefaultsRuleName(t *testing.T) {
	plan, err := PlanFrom("", planConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if plan.RuleName != DefaultRuleName {
		t.Fatalf("unexpected rule name %q", plan.RuleName)
	}
}

func TestPlanFromRejectsTemplateReferences(t *testing.T) {
	cfg := planConfig()
	cfg.Bus = notifier.BusFromLogicalID("Bus")
	if _, err := PlanFrom("x", cfg); err == nil {
		t.Fatalf("expected error for non-literal bus")
	}

	cfg = planConfig()
	cfg.Topic = notifier.TopicFromLogicalID("Topic")
	if _, err := PlanFrom("x", cfg); err == nil {
		t.Fatalf("expected error for non-literal topic")
	}
}

func TestPlanFromValidates(t *testing.T) {
	if _, err := PlanFrom("x", notifier.Config{}); err == nil {
		t.Fatalf("expected validation error for empty config")
	}
}

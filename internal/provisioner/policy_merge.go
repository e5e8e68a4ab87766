// Where: internal/provisioner/policy_merge.go
// What: Merge the publish grant into an existing topic policy.
// Why: Re-applying must replace our statement and leave unrelated ones alone.
package provisioner

import (
	"encoding/json"
	"fmt"

	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/cfn"
	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/notifier"
)

// mergeTopicPolicy rebuilds the topic policy document with the plan's
// grant. Statements are keyed by Sid: an existing statement with our Sid
// is replaced, everything else is preserved as-is.
func mergeTopicPolicy(existing string, plan Plan, ruleArn string) (string, error) {
	doc := map[string]any{}
	if existing != "" {
		if err := json.Unmarshal([]byte(existing), &doc); err != nil {
			return "", fmt.Errorf("decode existing policy: %w", err)
		}
	}
	if doc["Version"] == nil {
		doc["Version"] = cfn.PolicyVersion
	}

	var statements []any
	if raw, ok := doc["Statement"].([]any); ok {
		for _, stmt := range raw {
			if m, ok := stmt.(map[string]any); ok && m["Sid"] == plan.StatementID {
				continue
			}
			statements = append(statements, stmt)
		}
	}

	grant := notifier.PublishGrant("", plan.TopicArn, ruleArn)
	grant.Sid = plan.StatementID
	encoded, err := json.Marshal(grant)
	if err != nil {
		return "", fmt.Errorf("encode grant: %w", err)
	}
	var grantValue map[string]any
	if err := json.Unmarshal(encoded, &grantValue); err != nil {
		return "", fmt.Errorf("decode grant: %w", err)
	}
	statements = append(statements, grantValue)
	doc["Statement"] = statements

	merged, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode merged policy: %w", err)
	}
	return string(merged), nil
}

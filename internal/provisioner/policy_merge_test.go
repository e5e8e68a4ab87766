// Where: internal/provisioner/policy_merge_test.go
// What: Tests for the Sid-keyed topic policy merge.
// Why: Re-applies must converge instead of stacking duplicate grants.
package provisioner

import (
	"encoding/json"
	"testing"
)

const ruleArn = "arn:aws:events:us-east-1:123456789012:rule/my-notifier"

func mergedStatements(t *testing.T, policy string) []any {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal([]byte(policy), &doc); err != nil {
		t.Fatalf("decode merged policy: %v", err)
	}
	if doc["Version"] != "2012-10-17" {
		t.Fatalf("unexpected version %v", doc["Version"])
	}
	statements, ok := doc["Statement"].([]any)
	if !ok {
		t.Fatalf("missing statement list: %v", doc)
	}
	return statements
}

func TestMergeIntoEmptyPolicy(t *testing.T) {
	plan := testPlan(t)
	merged, err := mergeTopicPolicy("", plan, ruleArn)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	statements := mergedStatements(t, merged)
	if len(statements) != 1 {
		t.Fatalf("expected one statement, got %v", statements)
	}
	stmt := statements[0].(map[string]any)
	if stmt["Sid"] != plan.StatementID {
		t.Fatalf("unexpected sid %v", stmt["Sid"])
	}
	condition := stmt["Condition"].(map[string]any)["ArnEquals"].(map[string]any)
	if condition["aws:SourceArn"] != ruleArn {
		t.Fatalf("condition is not pinned to the rule: %v", condition)
	}
}

func TestMergePreservesUnrelatedStatements(t *testing.T) {
	existing := `{"Version":"2012-10-17","Statement":[{"Sid":"AllowOps","Effect":"Allow","Principal":"*","Action":"sns:Subscribe","Resource":"*"}]}`
	plan := testPlan(t)
	merged, err := mergeTopicPolicy(existing, plan, ruleArn)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	statements := mergedStatements(t, merged)
	if len(statements) != 2 {
		t.Fatalf("expected two statements, got %v", statements)
	}
	if statements[0].(map[string]any)["Sid"] != "AllowOps" {
		t.Fatalf("unrelated statement lost: %v", statements[0])
	}
	if statements[1].(map[string]any)["Sid"] != plan.StatementID {
		t.Fatalf("grant not appended: %v", statements[1])
	}
}

func TestMergeReplacesOwnStatement(t *testing.T) {
	plan := testPlan(t)
	first, err := mergeTopicPolicy("", plan, "arn:aws:events:us-east-1:123456789012:rule/stale")
	if err != nil {
		t.Fatalf("first merge: %v", err)
	}
	second, err := mergeTopicPolicy(first, plan, ruleArn)
	if err != nil {
		t.Fatalf("second merge: %v", err)
	}
	statements := mergedStatements(t, second)
	if len(statements) != 1 {
		t.Fatalf("merge stacked duplicate grants: %v", statements)
	}
	condition := statements[0].(map[string]any)["Condition"].(map[string]any)["ArnEquals"].(map[string]any)
	if condition["aws:SourceArn"] != ruleArn {
		t.Fatalf("stale rule ARN survived the merge: %v", condition)
	}
}

func TestMergeRejectsCorruptPolicy(t *testing.T) {
	if _, err := mergeTopicPolicy("{not json", testPlan(t), ruleArn); err == nil {
		t.Fatalf("expected decode error")
	}
}

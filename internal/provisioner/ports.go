// Where: internal/provisioner/ports.go
// What: Narrow service APIs the provisioner depends on.
// Why: Keep SDK types out of the apply logic and make it fakeable in tests.
package provisioner

import "context"

// RulePut carries everything needed to create or update the rule.
type RulePut struct {
	Name         string
	Description  string
	EventBusName string
	EventPattern string
	State        string
}

// TargetPut binds the topic target with its input transformer to the rule.
type TargetPut struct {
	RuleName     string
	EventBusName string
	TargetID     string
	Arn          string
	PathsMap     map[string]string
	Template     string
}

// EventsAPI is the EventBridge surface the provisioner uses.
type EventsAPI interface {
	// PutRule upserts the rule and returns its ARN.
	PutRule(ctx context.Context, input RulePut) (string, error)
	PutTargets(ctx context.Context, input TargetPut) error
}

// SNSAPI is the SNS surface the provisioner uses.
type SNSAPI interface {
	// GetTopicPolicy returns the topic's resource policy document, or
	// an empty string when none is attached.
	GetTopicPolicy(ctx context.Context, topicArn string) (string, error)
	SetTopicPolicy(ctx context.Context, topicArn string, policy string) error
}

// ClientFactory builds the service clients on demand.
type ClientFactory interface {
	Events(ctx context.Context) (EventsAPI, error)
	SNS(ctx context.Context) (SNSAPI, error)
}

// Where: internal/notifier/config.go
// What: Notifier configuration value types.
// Why: Keep bus/topic references and the message body template as immutable config.
package notifier

import (
	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/cfn"
	"github.com/hideokamoto/aws-simple-stripe-event-notifier/internal/transformer"
)

// StripeEventSource is the partner event source namespace Stripe publishes
// under. Rules match it by prefix, not exact value, because the full
// source name carries an account-scoped suffix.
const StripeEventSource = "aws.partner/stripe.com"

// Config describes one Stripe event notifier. All four fields are
// required; Validate reports every missing field at once.
type Config struct {
	// Bus is the partner event bus the Stripe events arrive on.
	Bus Bus
	// Topic is the SNS topic the matched events are forwarded to.
	Topic Topic
	// EventTypes lists the Stripe event type names to forward, for
	// example "payment_intent.succeeded". Order is preserved in the
	// emitted description exactly as given.
	EventTypes []string
	// MessageBody builds the shape of the delivered message. It is
	// invoked exactly once at composition time; extraction tokens it
	// places in the result are resolved per delivered event.
	MessageBody func(EventField) any
}

// Bus references an event bus either by literal name or by a logical ID
// inside the same template.
type Bus struct {
	value   any
	literal string
}

// BusFromName references an existing bus by its name or ARN.
func BusFromName(name string) Bus {
	return Bus{value: name, literal: name}
}

// BusFromLogicalID references a bus declared in the same template.
func BusFromLogicalID(logicalID string) Bus {
	return Bus{value: cfn.Ref{LogicalID: logicalID}}
}

// Value returns the template-level reference for EventBusName.
func (b Bus) Value() any { return b.value }

// LiteralName returns the bus name when the reference is literal.
func (b Bus) LiteralName() (string, bool) {
	return b.literal, b.literal != ""
}

func (b Bus) isZero() bool { return b.value == nil }

// Topic references an SNS topic either by literal ARN or by a logical ID
// inside the same template.
type Topic struct {
	value   any
	literal string
}

// TopicFromArn references an existing topic by ARN.
func TopicFromArn(arn string) Topic {
	return Topic{value: arn, literal: arn}
}

// TopicFromLogicalID references a topic declared in the same template.
// Ref on an AWS::SNS::Topic resolves to its ARN.
func TopicFromLogicalID(logicalID string) Topic {
	return Topic{value: cfn.Ref{LogicalID: logicalID}}
}

// Value returns the template-level reference for the topic ARN.
func (t Topic) Value() any { return t.value }

// LiteralArn returns the topic ARN when the reference is literal.
func (t Topic) LiteralArn() (string, bool) {
	return t.literal, t.literal != ""
}

func (t Topic) isZero() bool { return t.value == nil }

// EventField hands extraction helpers to the message body template.
// Every helper returns a lazy token; none of them reads a real event.
type EventField struct{}

// FromPath references an arbitrary JSON path within the delivered event.
func (EventField) FromPath(path string) transformer.Ref {
	return transformer.FromPath(path)
}

// DetailType references the event's detail-type, i.e. the Stripe event
// type name.
func (f EventField) DetailType() transformer.Ref { return f.FromPath("$.detail-type") }

// Detail references the full Stripe event payload.
func (f EventField) Detail() transformer.Ref { return f.FromPath("$.detail") }

// Source references the partner event source.
func (f EventField) Source() transformer.Ref { return f.FromPath("$.source") }

// Account references the receiving AWS account ID.
func (f EventField) Account() transformer.Ref { return f.FromPath("$.account") }

// Region references the receiving region.
func (f EventField) Region() transformer.Ref { return f.FromPath("$.region") }

// Time references the event timestamp.
func (f EventField) Time() transformer.Ref { return f.FromPath("$.time") }

// EventID references the unique event ID.
func (f EventField) EventID() transformer.Ref { return f.FromPath("$.id") }

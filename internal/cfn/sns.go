// Where: internal/cfn/sns.go
// What: Property types for AWS::SNS::TopicPolicy and IAM policy documents.
// Why: Express the publish grant as typed values with the standard document shape.
package cfn

// SNSTopicPolicyType is the CloudFormation resource type for topic policies.
const SNSTopicPolicyType = "AWS::SNS::TopicPolicy"

// PolicyVersion is the current IAM policy language version.
const PolicyVersion = "2012-10-17"

// SNSTopicPolicy attaches a policy document to one or more topics.
type SNSTopicPolicy struct {
	PolicyDocument PolicyDocument `json:"PolicyDocument"`
	Topics         []any          `json:"Topics"`
}

// PolicyDocument is an IAM resource policy.
type PolicyDocument struct {
	Version   string            `json:"Version"`
	Statement []PolicyStatement `json:"Statement"`
}

// PolicyStatement is a single allow/deny entry. Statements on a topic are
// evaluated independently, so ordering relative to pre-existing statements
// carries no meaning.
type PolicyStatement struct {
	Sid       string                    `json:"Sid,omitempty"`
	Effect    string                    `json:"Effect"`
	Principal any                       `json:"Principal,omitempty"`
	Action    any                       `json:"Action"`
	Resource  any                       `json:"Resource,omitempty"`
	Condition map[string]map[string]any `json:"Condition,omitempty"`
}

// ServicePrincipal grants to an AWS service identity.
type ServicePrincipal struct {
	Service string `json:"Service"`
}

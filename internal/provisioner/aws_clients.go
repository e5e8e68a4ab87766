// Where: internal/provisioner/aws_clients.go
// What: AWS SDK adapters for EventBridge and SNS.
// Why: Map internal provisioner types to SDK types.
package provisioner

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	eventtypes "github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

type awsEventsClient struct {
	client *eventbridge.Client
}

func (c awsEventsClient) PutRule(ctx context.Context, input RulePut) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("eventbridge client is nil")
	}
	out, err := c.client.PutRule(ctx, &eventbridge.PutRuleInput{
		Name:         aws.String(input.Name),
		Description:  aws.String(input.Description),
		EventBusName: aws.String(input.EventBusName),
		EventPattern: aws.String(input.EventPattern),
		State:        eventtypes.RuleState(input.State),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.RuleArn), nil
}

func (c awsEventsClient) PutTargets(ctx context.Context, input TargetPut) error {
	if c.client == nil {
		return fmt.Errorf("eventbridge client is nil")
	}
	target := eventtypes.Target{
		Id:  aws.String(input.TargetID),
		Arn: aws.String(input.Arn),
	}
	if input.Template != "" {
		target.InputTransformer = &eventtypes.InputTransformer{
			InputPathsMap: input.PathsMap,
			InputTemplate: aws.String(input.Template),
		}
	}
	out, err := c.client.PutTargets(ctx, &eventbridge.PutTargetsInput{
		Rule:         aws.String(input.RuleName),
		EventBusName: aws.String(input.EventBusName),
		Targets:      []eventtypes.Target{target},
	})
	if err != nil {
		return err
	}
	if out.FailedEntryCount > 0 {
		var reasons []string
		for _, entry := range out.FailedEntries {
			reasons = append(reasons, aws.ToString(entry.ErrorMessage))
		}
		return fmt.Errorf("put targets failed: %s", strings.Join(reasons, "; "))
	}
	return nil
}

type awsSNSClient struct {
	client *sns.Client
}

func (c awsSNSClient) GetTopicPolicy(ctx context.Context, topicArn string) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("sns client is nil")
	}
	out, err := c.client.GetTopicAttributes(ctx, &sns.GetTopicAttributesInput{
		TopicArn: aws.String(topicArn),
	})
	if err != nil {
		return "", err
	}
	return out.Attributes["Policy"], nil
}

func (c awsSNSClient) SetTopicPolicy(ctx context.Context, topicArn string, policy string) error {
	if c.client == nil {
		return fmt.Errorf("sns client is nil")
	}
	_, err := c.client.SetTopicAttributes(ctx, &sns.SetTopicAttributesInput{
		TopicArn:       aws.String(topicArn),
		AttributeName:  aws.String("Policy"),
		AttributeValue: aws.String(policy),
	})
	return err
}

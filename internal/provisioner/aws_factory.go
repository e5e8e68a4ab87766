// Where: internal/provisioner/aws_factory.go
// What: AWS client factory for EventBridge/SNS provisioning.
// Why: Encapsulate SDK configuration and local endpoint overrides.
package provisioner

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

const defaultAWSRegion = "us-east-1"

// endpointEnv overrides the service endpoint, e.g. for LocalStack.
const endpointEnv = "AWS_ENDPOINT_URL"

type awsClientFactory struct{}

func (awsClientFactory) Events(ctx context.Context) (EventsAPI, error) {
	cfg, err := loadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	client := eventbridge.NewFromConfig(cfg, func(options *eventbridge.Options) {
		if endpoint := os.Getenv(endpointEnv); endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
		}
	})
	return awsEventsClient{client: client}, nil
}

func (awsClientFactory) SNS(ctx context.Context) (SNSAPI, error) {
	cfg, err := loadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	client := sns.NewFromConfig(cfg, func(options *sns.Options) {
		if endpoint := os.Getenv(endpointEnv); endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
		}
	})
	return awsSNSClient{client: client}, nil
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = defaultAWSRegion
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	// Local endpoints accept any static credentials; real AWS goes
	// through the default chain.
	if os.Getenv(endpointEnv) != "" {
		creds := credentials.NewStaticCredentialsProvider(localAccessKey(), localSecretKey(), "")
		opts = append(opts, config.WithCredentialsProvider(creds))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, err
	}
	return cfg, nil
}

func localAccessKey() string {
	if value := os.Getenv("NOTIFIER_ACCESS_KEY"); value != "" {
		return value
	}
	return "dummy"
}

func localSecretKey() string {
	if value := os.Getenv("NOTIFIER_SECRET_KEY"); value != "" {
		return value
	}
	return "dummy"
}

package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates the shared DynamoDB client behind the marketplace
// repositories (quote_requests, site_visit_applications, contractor_quotes
// and contractors tables; each repository resolves its own *_TABLE env var).
//
// Client env vars, local-friendly defaults:
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional, e.g. http://dynamodb:8000 in compose)
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := newConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("[database][dynamodb] config load failed: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func newConfigFromEnv(ctx context.Context) (aws.Config, error) {
	// Local DynamoDB accepts any credentials but the SDK insists on having
	// some, so unset keys fall back to a placeholder pair.
	creds := credentials.NewStaticCredentialsProvider(
		envOrDefault("AWS_ACCESS_KEY_ID", "local"),
		envOrDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(envOrDefault("AWS_REGION", "us-east-1")),
		config.WithCredentialsProvider(creds),
	}
	if endpoint := os.Getenv("DYNAMODB_ENDPOINT"); endpoint != "" {
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(staticDynamoEndpoint(endpoint)))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// staticDynamoEndpoint pins the DynamoDB service to a fixed URL (local or
// containerized instance) and leaves every other service on SDK resolution.
func staticDynamoEndpoint(url string) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		if service == dynamodb.ServiceID {
			return aws.Endpoint{URL: url, SigningRegion: region, HostnameImmutable: true}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoClient is the subset of the DynamoDB API the crew store calls.
// *dynamodb.Client satisfies it; tests substitute a fake.
type DynamoClient interface {
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
	BatchWriteItem(ctx context.Context, params *sdk.BatchWriteItemInput, optFns ...func(*sdk.Options)) (*sdk.BatchWriteItemOutput, error)
}

// ClientConfig selects region, credentials and endpoint for the DynamoDB client.
type ClientConfig struct {
	Region string
	// AccessKey and SecretKey are optional static credentials; when empty the
	// default provider chain (Lambda execution role, profile, env) is used.
	AccessKey string
	SecretKey string
	// Endpoint overrides the service endpoint, e.g. http://localhost:8000 for DynamoDB Local.
	Endpoint string
}

// CrewDataStore implements datastore.CrewStore on a single DynamoDB table
// keyed by movieId (partition) and crewRole (sort).
type CrewDataStore struct {
	client    DynamoClient
	tableName string
}

// NewDynamoDBClient initializes a DynamoDB client.
func NewDynamoDBClient(ctx context.Context, cc ClientConfig) (*sdk.Client, error) {
	var loadOpts []func(*config.LoadOptions) error
	if cc.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cc.Region))
	}
	if cc.AccessKey != "" && cc.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cc.AccessKey, cc.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if cc.Endpoint != "" {
			o.BaseEndpoint = aws.String(cc.Endpoint)
		}
	})
	return client, nil
}

// NewCrewDataStore builds a DynamoDB client from cc and wraps it for tableName.
func NewCrewDataStore(ctx context.Context, cc ClientConfig, tableName string) (*CrewDataStore, error) {
	client, err := NewDynamoDBClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewCrewDataStoreWithClient(client, tableName), nil
}

// NewCrewDataStoreWithClient wraps an existing client.
func NewCrewDataStoreWithClient(client DynamoClient, tableName string) *CrewDataStore {
	return &CrewDataStore{
		client:    client,
		tableName: tableName,
	}
}

// TableName returns the table the store reads and writes.
func (d *CrewDataStore) TableName() string {
	return d.tableName
}

package dynamo

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ainame-auth/internal/config"
	"go.uber.org/zap"
)

// Bootstrap creates the tables and GSIs if they don't already exist.
// Safe to call on every startup. The email-codes table is skipped when codes
// live in Redis.
func Bootstrap(ctx context.Context, client *dynamodb.Client, cfg *config.Config) {
	tables := cfg.DynamoTables

	createTable(ctx, client, &dynamodb.CreateTableInput{
		TableName:   aws.String(tables.Users),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(attrUserID), AttributeType: types.ScalarAttributeTypeN},
			{AttributeName: aws.String(attrEmail), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attrUserID), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			gsi(indexEmail, attrEmail),
		},
	})

	createTable(ctx, client, &dynamodb.CreateTableInput{
		TableName:   aws.String(tables.Counters),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(attrCounterName), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attrCounterName), KeyType: types.KeyTypeHash},
		},
	})

	if cfg.VerificationBackend != config.BackendDynamo {
		return
	}
	createTable(ctx, client, &dynamodb.CreateTableInput{
		TableName:   aws.String(tables.EmailCodes),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(attrEmail), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String(attrCodeID), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attrEmail), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String(attrCodeID), KeyType: types.KeyTypeRange},
		},
	})
	enableTTL(ctx, client, tables.EmailCodes, attrExpiresAt)
}

// gsi builds a hash-only GSI descriptor projecting all attributes.
func gsi(indexName, hashKey string) types.GlobalSecondaryIndex {
	return types.GlobalSecondaryIndex{
		IndexName: aws.String(indexName),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(hashKey), KeyType: types.KeyTypeHash},
		},
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}

func createTable(ctx context.Context, client *dynamodb.Client, input *dynamodb.CreateTableInput) {
	_, err := client.CreateTable(ctx, input)
	if err != nil {
		// ResourceInUseException means the table already exists.
		var riue *types.ResourceInUseException
		if !errors.As(err, &riue) {
			zap.L().Warn("could not create table", zap.String("table", *input.TableName), zap.Error(err))
		}
		return
	}
	zap.L().Info("created table", zap.String("table", *input.TableName))
}

func enableTTL(ctx context.Context, client *dynamodb.Client, tableName, ttlAttr string) {
	_, err := client.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
		TableName: aws.String(tableName),
		TimeToLiveSpecification: &types.TimeToLiveSpecification{
			Enabled:       aws.Bool(true),
			AttributeName: aws.String(ttlAttr),
		},
	})
	if err != nil {
		zap.L().Warn("could not enable TTL", zap.String("table", tableName), zap.Error(err))
	}
}

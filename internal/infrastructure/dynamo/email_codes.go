package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/ainame-auth/internal/domain"
)

// EmailCodeRepo stores issued verification codes, one item per issue.
// PK: email, SK: code_id (ULID). expires_at is the table TTL attribute.
type EmailCodeRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewEmailCodeRepo(client *dynamodb.Client, tableName string) *EmailCodeRepo {
	return &EmailCodeRepo{client: client, tableName: tableName}
}

func (r *EmailCodeRepo) Put(ctx context.Context, c *domain.EmailCode) error {
	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal email code: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// FindLatest walks the email's records newest first and returns the first
// whose code matches. The filter runs after Limit, so pages are followed
// until a match or the end of the partition.
func (r *EmailCodeRepo) FindLatest(ctx context.Context, email, code string) (*domain.EmailCode, error) {
	p := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#e = :e"),
		FilterExpression:       aws.String("#c = :c"),
		ExpressionAttributeNames: map[string]string{
			"#e": attrEmail,
			"#c": attrCode,
		},
		ExpressionAttributeValues: strValues(":e", email, ":c", code),
		ScanIndexForward:          aws.Bool(false),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		if len(out.Items) == 0 {
			continue
		}
		var c domain.EmailCode
		if err := attributevalue.UnmarshalMap(out.Items[0], &c); err != nil {
			return nil, err
		}
		return &c, nil
	}
	return nil, fmt.Errorf("email code not found: %w", domain.ErrNotFound)
}

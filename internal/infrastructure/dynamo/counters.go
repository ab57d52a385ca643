package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// CounterRepo hands out monotonically increasing integers per counter name.
// PK: name
type CounterRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewCounterRepo(client *dynamodb.Client, tableName string) *CounterRepo {
	return &CounterRepo{client: client, tableName: tableName}
}

// Next atomically increments the named counter and returns the new value.
// The first call for a name returns 1.
func (r *CounterRepo) Next(ctx context.Context, name string) (int64, error) {
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      strKey(attrCounterName, name),
		UpdateExpression:         aws.String("ADD #v :one"),
		ExpressionAttributeNames: map[string]string{"#v": attrCounterVal},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("increment counter %s: %w", name, err)
	}
	var v struct {
		Value int64 `dynamodbav:"value"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &v); err != nil {
		return 0, fmt.Errorf("unmarshal counter %s: %w", name, err)
	}
	return v.Value, nil
}

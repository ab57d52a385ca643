package dynamo

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Attribute and index names shared by the repos and Bootstrap.
const (
	attrUserID      = "user_id"
	attrEmail       = "email"
	attrCode        = "code"
	attrCodeID      = "code_id"
	attrExpiresAt   = "expires_at"
	attrCounterName = "name"
	attrCounterVal  = "value"

	indexEmail = "email-index"
)

// strKey builds a DynamoDB primary key map with a single string attribute.
func strKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

// numKey builds a DynamoDB primary key map with a single numeric attribute.
func numKey(name string, value int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberN{Value: strconv.FormatInt(value, 10)},
	}
}

// strValues builds an ExpressionAttributeValues map of string placeholders.
func strValues(kv ...string) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i]] = &types.AttributeValueMemberS{Value: kv[i+1]}
	}
	return out
}

package domain

import "time"

// EmailCode is one issued registration code.
// PK: email, SK: code_id (ULID, so newer records sort last).
// ExpiresAt is a Unix timestamp used as DynamoDB TTL; validity is decided from CreatedAt.
type EmailCode struct {
	ID        string    `json:"id" dynamodbav:"code_id"`
	Email     string    `json:"email" dynamodbav:"email"`
	Code      string    `json:"code" dynamodbav:"code"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	ExpiresAt int64     `json:"expires_at" dynamodbav:"expires_at"`
}

package http

import (
	"context"
	"time"

	"github.com/ainame-auth/internal/domain"
)

// UserRepository is the minimal interface the router requires from a user store.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// EmailCodeRepository is the minimal interface the router requires from a
// verification code store. Dynamo and Redis both satisfy it.
type EmailCodeRepository interface {
	Put(ctx context.Context, c *domain.EmailCode) error
	FindLatest(ctx context.Context, email, code string) (*domain.EmailCode, error)
}

// TokenCodec signs and verifies access and refresh tokens.
type TokenCodec interface {
	Encode(userID int64, kind domain.TokenKind, ttl time.Duration) (string, error)
	Decode(token string, expected domain.TokenKind) (int64, error)
}

// Mailer delivers verification codes.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

// EventPublisher emits domain events. Optional.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

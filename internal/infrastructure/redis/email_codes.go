package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ainame-auth/internal/domain"
	"github.com/redis/go-redis/v9"
)

// keyGrace keeps a record readable a little past its expiry so the store,
// not Redis, decides the boundary case.
const keyGrace = time.Minute

type kv interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// EmailCodeRepo keeps the latest record per (email, code) under one key.
// Re-issuing the same code overwrites the older record.
type EmailCodeRepo struct {
	client kv
	now    func() time.Time
}

func NewEmailCodeRepo(client *redis.Client) *EmailCodeRepo {
	return &EmailCodeRepo{client: client, now: time.Now}
}

func codeKey(email, code string) string {
	return fmt.Sprintf("email_code:%s:%s", email, code)
}

func (r *EmailCodeRepo) Put(ctx context.Context, c *domain.EmailCode) error {
	body, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal email code: %w", err)
	}
	ttl := time.Unix(c.ExpiresAt, 0).Sub(r.now()) + keyGrace
	if ttl <= 0 {
		ttl = keyGrace
	}
	return r.client.Set(ctx, codeKey(c.Email, c.Code), body, ttl).Err()
}

func (r *EmailCodeRepo) FindLatest(ctx context.Context, email, code string) (*domain.EmailCode, error) {
	raw, err := r.client.Get(ctx, codeKey(email, code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("email code not found: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	var c domain.EmailCode
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode email code: %w", err)
	}
	return &c, nil
}

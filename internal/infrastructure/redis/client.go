package redis

import (
	"context"
	"time"

	"github.com/ainame-auth/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewClient connects to Redis and verifies the connection with a PING.
func NewClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	zap.L().Info("connected to redis", zap.String("addr", cfg.RedisAddr), zap.Int("db", cfg.RedisDB))
	return client, nil
}

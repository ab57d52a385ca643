package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ainame-auth/internal/config"
	"github.com/ainame-auth/internal/infrastructure/dynamo"
	jwtinfra "github.com/ainame-auth/internal/infrastructure/jwt"
	redisinfra "github.com/ainame-auth/internal/infrastructure/redis"
	"github.com/ainame-auth/internal/infrastructure/smtp"
	"github.com/ainame-auth/internal/infrastructure/sns"
	"github.com/ainame-auth/internal/pkg/logger"
	transporthttp "github.com/ainame-auth/internal/transport/http"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	if envErr != nil {
		zl.Info("no .env file found, reading from environment")
	}

	if err := cfg.Validate(); err != nil {
		zl.Fatal("invalid configuration", zap.Error(err))
	}

	ctx := context.Background()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient, err := dynamo.NewClient(ctx, cfg)
	if err != nil {
		zl.Fatal("dynamo client", zap.Error(err))
	}
	dynamo.Bootstrap(ctx, dynamoClient, cfg)

	counters := dynamo.NewCounterRepo(dynamoClient, cfg.DynamoTables.Counters)
	deps := &transporthttp.Deps{
		UserRepo: dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users, counters),
		Codec:    jwtinfra.NewCodec(cfg.JWTSecret),
		Mailer:   smtp.NewMailer(cfg),
	}

	switch cfg.VerificationBackend {
	case config.BackendRedis:
		rdb, err := redisinfra.NewClient(ctx, cfg)
		if err != nil {
			zl.Fatal("redis client", zap.Error(err))
		}
		defer func() { _ = rdb.Close() }()
		deps.EmailCodeRepo = redisinfra.NewEmailCodeRepo(rdb)
	default:
		deps.EmailCodeRepo = dynamo.NewEmailCodeRepo(dynamoClient, cfg.DynamoTables.EmailCodes)
	}

	// Registration events are only published when a topic is configured.
	if cfg.UserEventsTopicARN != "" {
		if pub, err := sns.NewPublisher(ctx, cfg); err == nil {
			deps.Events = pub
		} else {
			zl.Warn("SNS publisher not available", zap.Error(err))
		}
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zl.Info("server starting",
			zap.String("port", cfg.AppPort),
			zap.String("env", cfg.AppEnv),
			zap.String("verification_backend", cfg.VerificationBackend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("forced shutdown", zap.Error(err))
		return
	}
	zl.Info("server stopped")
}

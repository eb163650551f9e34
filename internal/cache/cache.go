package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/config"
)

// NewClient conecta no Redis. Endereço vazio desativa o cache
// (comportamento degradado, nunca erro fatal).
func NewClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		zap.L().Warn("REDIS_ADDR not set, availability cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		zap.L().Warn("redis unreachable, availability cache disabled", zap.Error(err))
		return nil
	}

	return rdb
}

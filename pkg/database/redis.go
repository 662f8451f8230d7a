package database

import (
	"ai_interviewer_backend/internal/config"
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// InitRedis Redis 仅用于语音令牌缓存，未配置 host 时直接降级为不缓存
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg.Host == "" {
		log.Println("Redis not configured, token caching disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     50,
		MinIdleConns: 5,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	log.Println("Redis connection established")
	return rdb, nil
}

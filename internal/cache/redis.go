package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backend shared between service replicas, so every
// instance serves the same word of the day.
type Redis struct {
	rdb *redis.Client
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewRedis(cfg RedisConfig) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &Redis{rdb: rdb}
}

func (r *Redis) Get(ctx context.Context, key string) (Entry, bool, error) {
	val, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return Entry{}, false, nil
		}

		return Entry{}, false, fmt.Errorf("retrieve entry from redis: %w", err)
	}

	var e Entry
	if err := json.Unmarshal([]byte(val), &e); err != nil {
		return Entry{}, false, fmt.Errorf("deserialize cache entry: %w", err)
	}

	return e, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, e Entry, ttl time.Duration) error {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("serialize cache entry: %w", err)
	}

	if err := r.rdb.Set(ctx, key, b, ttl).Err(); err != nil {
		return fmt.Errorf("store entry in redis: %w", err)
	}

	return nil
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}

package settings

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis-backed implementation of the SettingsStore port. Settings live
// in a single hash so All is one round trip at startup.
type RedisSettingsStore struct {
	client *redis.Client
	key    string
}

func NewRedisSettingsStore(ctx context.Context, addr, password string, db int) (*RedisSettingsStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisSettingsStore{client: client, key: "custody:settings"}, nil
}

func (s *RedisSettingsStore) Close() error {
	return s.client.Close()
}

func (s *RedisSettingsStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.HGet(ctx, s.key, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("settings get %q: %w", key, err)
	}
	return val, nil
}

func (s *RedisSettingsStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.HSet(ctx, s.key, key, value).Err(); err != nil {
		return fmt.Errorf("settings set %q: %w", key, err)
	}
	return nil
}

func (s *RedisSettingsStore) All(ctx context.Context) (map[string]string, error) {
	vals, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("settings load: %w", err)
	}
	return vals, nil
}

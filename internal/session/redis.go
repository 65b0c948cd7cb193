package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// idleTTL evicts sessions that have not been written for this long.
// Every Set refreshes the deadline for the touched key.
const idleTTL = 30 * 24 * time.Hour

// RedisStore is a Store backed by Redis. Values are stored under
// namespaced keys, one Redis string per session slot, so each write is
// an atomic replace of the whole value.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string, key Key) (string, bool, error) {
	val, err := s.client.Get(ctx, storageKey(sessionID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read session key %s: %w", key, err)
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID string, key Key, value string) error {
	if err := s.client.Set(ctx, storageKey(sessionID, key), value, idleTTL).Err(); err != nil {
		return fmt.Errorf("failed to write session key %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string, key Key) error {
	if err := s.client.Del(ctx, storageKey(sessionID, key)).Err(); err != nil {
		return fmt.Errorf("failed to delete session key %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func storageKey(sessionID string, key Key) string {
	return fmt.Sprintf("session:%s:%s", sessionID, key)
}

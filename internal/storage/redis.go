package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces slot keys in a shared Redis.
const DefaultRedisPrefix = "resume-builder:"

// RedisStore keeps slots as plain Redis strings.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// ConnectRedis parses a redis:// URL, pings the server and returns a store.
func ConnectRedis(ctx context.Context, rawURL, prefix string) (*RedisStore, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

func (r *RedisStore) key(k string) string {
	return r.prefix + k
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &Error{Backend: "redis", Op: "get", Key: key, Cause: err}
	}
	return value, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return &Error{Backend: "redis", Op: "set", Key: key, Cause: err}
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return &Error{Backend: "redis", Op: "delete", Key: key, Cause: err}
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

package db

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
)

// AppRedisClient wraps the go-redis client with the app's context.
type AppRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewAppRedisClient verifies connectivity and returns the wrapped client.
func NewAppRedisClient(ctx context.Context, client *redis.Client) *AppRedisClient {
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	log.Println("[Redis] Connected")

	return &AppRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *AppRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *AppRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// Keys lists all keys matching the given glob pattern.
func (r *AppRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes a key.
func (r *AppRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *AppRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *AppRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

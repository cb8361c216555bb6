package db

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// StoreRedisClient wraps a real Redis connection behind the RedisClient
// interface.
type StoreRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewStoreRedisClient verifies connectivity and returns a live client.
func NewStoreRedisClient(ctx context.Context, client *redis.Client) (*StoreRedisClient, error) {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	log.Info("[DB] Connected to Redis")
	return &StoreRedisClient{client: client, ctx: ctx}, nil
}

// Set stores a key-value pair. A zero ttl means no expiry.
func (r *StoreRedisClient) Set(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Get retrieves the value for a key.
func (r *StoreRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// Keys lists the keys matching a glob pattern.
func (r *StoreRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes a key.
func (r *StoreRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// Ping checks the connection.
func (r *StoreRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

// GetContext returns the client's base context.
func (r *StoreRedisClient) GetContext() context.Context {
	return r.ctx
}

package db

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// MockRedisClient is an in-memory RedisClient for tests and for running
// the server without a Redis instance. TTLs are ignored.
type MockRedisClient struct {
	mu   sync.RWMutex
	data map[string]string
	ctx  context.Context
}

// NewMockRedisClient initializes an empty in-memory client.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data: make(map[string]string),
		ctx:  ctx,
	}
}

// Set stores a key-value pair. The ttl is accepted and ignored.
func (m *MockRedisClient) Set(key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value, erroring on a missing key like a real client.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

// Keys matches keys against a pattern. Only the trailing-star glob the
// DAO uses is supported.
func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	prefix := strings.TrimSuffix(pattern, "*")
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Del removes a key. Deleting a missing key is not an error.
func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Ping always succeeds.
func (m *MockRedisClient) Ping() error {
	return nil
}

// GetContext returns the client's context.
func (m *MockRedisClient) GetContext() context.Context {
	return m.ctx
}

package testutil

import (
	"context"
	"sync"

	"github.com/tamaliftics/backend/pkg/xredis"
)

type mockRedisClient struct {
	mutex sync.Mutex
	data  map[string]string
}

func NewMockRedisClient() *mockRedisClient {
	return &mockRedisClient{data: make(map[string]string)}
}

func (c *mockRedisClient) Exist(ctx context.Context, key string) (bool, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	_, ok := c.data[key]
	return ok, nil
}

func (c *mockRedisClient) Get(ctx context.Context, key string) (string, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	value, ok := c.data[key]
	if !ok {
		return "", xredis.Nil
	}

	return value, nil
}

func (c *mockRedisClient) Set(ctx context.Context, key, value string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = value
	return nil
}

func (c *mockRedisClient) Del(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

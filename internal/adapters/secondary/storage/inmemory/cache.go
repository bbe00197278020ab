package inmemory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/TBOO-AI/agent/internal/ports/cache"
)

// Cache потокобезопасный in-memory кэш с TTL. Используется в тестах и
// в деплоях без Redis; реализует тот же интерфейс cache.Cache.
type Cache struct {
	mu    sync.RWMutex
	items map[string]item
}

type item struct {
	value     string
	expiresAt time.Time // нулевое время - без срока
}

func New() cache.Cache {
	return &Cache{
		items: make(map[string]item),
	}
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || it.expired() {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return it.value, nil
}

func (c *Cache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.items[key] = item{value: value, expiresAt: expiresAt}
	c.mu.Unlock()
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}

func (c *Cache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()
	return ok && !it.expired(), nil
}

func (c *Cache) Close() error {
	c.mu.Lock()
	c.items = make(map[string]item)
	c.mu.Unlock()
	return nil
}

func (i item) expired() bool {
	return !i.expiresAt.IsZero() && time.Now().After(i.expiresAt)
}

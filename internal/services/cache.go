package services

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type CacheItem struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Cache is a TTL memoization map keyed by operation string. Entries past
// their TTL read as absent. One-shot runs never hit the cleanup ticker; it
// matters for the serve and schedule modes.
type Cache struct {
	mu              sync.RWMutex
	items           map[string]CacheItem
	logger          *zap.Logger
	defaultDuration time.Duration
	cleanupInterval time.Duration
	stopCleanup     chan bool
	stopOnce        sync.Once
}

func NewCache(defaultDuration time.Duration, logger *zap.Logger) *Cache {
	cache := &Cache{
		items:           make(map[string]CacheItem),
		logger:          logger,
		defaultDuration: defaultDuration,
		cleanupInterval: time.Minute,
		stopCleanup:     make(chan bool),
	}

	go cache.startCleanup()

	return cache
}

func (c *Cache) Set(key string, data interface{}) {
	if c.defaultDuration <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = CacheItem{
		Data:      data,
		ExpiresAt: time.Now().Add(c.defaultDuration),
	}

	c.logger.Debug("Cached item",
		zap.String("key", key),
		zap.Time("expires_at", time.Now().Add(c.defaultDuration)))
}

func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	item, exists := c.items[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if time.Now().After(item.ExpiresAt) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, false
	}

	return item.Data, true
}

func (c *Cache) startCleanup() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCleanup:
			return
		}
	}
}

func (c *Cache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	expiredCount := 0

	for key, item := range c.items {
		if now.After(item.ExpiresAt) {
			delete(c.items, key)
			expiredCount++
		}
	}

	if expiredCount > 0 {
		c.logger.Debug("Cleaned expired cache items", zap.Int("count", expiredCount))
	}
}

func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCleanup)
	})
}

func (c *Cache) GetStats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]interface{}{
		"items":            len(c.items),
		"default_duration": c.defaultDuration.String(),
	}
}

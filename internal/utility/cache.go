package utility

import (
	"sync"
	"time"
)

// Cache quản lý cache trong bộ nhớ với thời gian sống và chu kỳ dọn dẹp
type Cache struct {
	items    map[string]cacheItem
	mu       sync.RWMutex
	ttl      time.Duration
	cleanup  time.Duration
	stopChan chan struct{}
}

type cacheItem struct {
	value    interface{}
	expireAt time.Time
}

// NewCache tạo một instance mới của Cache và khởi động vòng dọn dẹp
func NewCache(ttl, cleanup time.Duration) *Cache {
	cache := &Cache{
		items:    make(map[string]cacheItem),
		ttl:      ttl,
		cleanup:  cleanup,
		stopChan: make(chan struct{}),
	}
	go cache.cleanupLoop()
	return cache
}

// Set lưu giá trị vào cache với TTL mặc định
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheItem{value: value, expireAt: time.Now().Add(c.ttl)}
}

// Get lấy giá trị từ cache, trả về false nếu không có hoặc đã hết hạn
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.items[key]
	if !exists || time.Now().After(item.expireAt) {
		return nil, false
	}
	return item.value, true
}

// Delete xóa một key khỏi cache
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Stop dừng vòng dọn dẹp
func (c *Cache) Stop() {
	close(c.stopChan)
}

// cleanupLoop dọn các entry hết hạn theo chu kỳ
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for k, item := range c.items {
				if now.After(item.expireAt) {
					delete(c.items, k)
				}
			}
			c.mu.Unlock()
		case <-c.stopChan:
			return
		}
	}
}

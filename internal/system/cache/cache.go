/*
 * Copyright (c) 2025, Halyard Project.
 *
 * Halyard Project licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package cache provides a generic in-memory cache with TTL based expiry.
package cache

import (
	"sync"
	"time"

	"github.com/halyard-id/halyard/internal/system/config"
	"github.com/halyard-id/halyard/internal/system/log"
)

const loggerComponentName = "Cache"

// CacheInterface defines the common interface for cache operations.
type CacheInterface[T any] interface {
	GetName() string
	IsEnabled() bool
	Set(key string, value T)
	Get(key string) (T, bool)
	Delete(key string)
	Clear()
}

type cacheEntry[T any] struct {
	value        T
	expiryTime   time.Time
	lastAccessed time.Time
}

// Cache is the default in-memory implementation of the CacheInterface.
type Cache[T any] struct {
	name    string
	enabled bool
	maxSize int
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]*cacheEntry[T]
}

// NewCache creates a new cache instance configured from the runtime cache
// settings. Caching is disabled unless explicitly enabled; a disabled cache
// accepts all operations and misses on every lookup.
func NewCache[T any](name string) CacheInterface[T] {
	cacheConfig := config.GetHalyardRuntime().Config.Cache
	if !cacheConfig.Enabled {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
		logger.Debug("Caching is disabled", log.String("cacheName", name))
		return &Cache[T]{name: name}
	}

	return &Cache[T]{
		name:    name,
		enabled: true,
		maxSize: cacheConfig.Size,
		ttl:     time.Duration(cacheConfig.TTLSeconds) * time.Second,
		entries: make(map[string]*cacheEntry[T]),
	}
}

// GetName returns the name of the cache.
func (c *Cache[T]) GetName() string {
	return c.name
}

// IsEnabled returns whether the cache is enabled.
func (c *Cache[T]) IsEnabled() bool {
	return c.enabled
}

// Set stores a value in the cache, evicting the least recently accessed
// entry when the cache is full.
func (c *Cache[T]) Set(key string, value T) {
	if !c.enabled || key == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	now := time.Now()
	c.entries[key] = &cacheEntry[T]{
		value:        value,
		expiryTime:   now.Add(c.ttl),
		lastAccessed: now,
	}
}

// Get retrieves a value from the cache. Expired entries are removed on
// lookup and reported as a miss.
func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T
	if !c.enabled || key == "" {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		return zero, false
	}
	if time.Now().After(entry.expiryTime) {
		delete(c.entries, key)
		return zero, false
	}

	entry.lastAccessed = time.Now()
	return entry.value, true
}

// Delete removes a value from the cache.
func (c *Cache[T]) Delete(key string) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes all values from the cache.
func (c *Cache[T]) Clear() {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry[T])
}

// evictOldest removes the least recently accessed entry. Callers must
// hold the write lock.
func (c *Cache[T]) evictOldest() {
	var oldestKey string
	var oldestTime time.Time
	for key, entry := range c.entries {
		if oldestKey == "" || entry.lastAccessed.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.lastAccessed
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

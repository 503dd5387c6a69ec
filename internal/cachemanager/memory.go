package cachemanager

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/zjrosen/twig/internal/log"
)

const (
	DefaultExpiration      = 5 * time.Minute
	DefaultCleanupInterval = 10 * time.Minute
)

// Memory is a Manager backed by go-cache.
type Memory[V any] struct {
	name  string
	cache *gocache.Cache
}

// NewMemory creates an in-memory cache. name only appears in log lines.
func NewMemory[V any](name string, defaultExpiration, cleanupInterval time.Duration) *Memory[V] {
	return &Memory[V]{
		name:  name,
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

func (m *Memory[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V

	raw, found := m.cache.Get(key)
	if !found {
		log.Debug(log.CatCache, "cache miss", "cache", m.name, "key", key)
		return zero, false
	}
	v, ok := raw.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "cache", m.name, "key", key)
		return zero, false
	}

	log.Debug(log.CatCache, "cache hit", "cache", m.name, "key", key)
	return v, true
}

func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) {
	m.cache.Set(key, value, ttl)
}

func (m *Memory[V]) Delete(_ context.Context, keys ...string) {
	for _, key := range keys {
		m.cache.Delete(key)
	}
}

func (m *Memory[V]) Flush(context.Context) {
	m.cache.Flush()
	log.Debug(log.CatCache, "cache flushed", "cache", m.name)
}

// Len reports the number of unexpired entries.
func (m *Memory[V]) Len() int { return m.cache.ItemCount() }

package cachemanager

import (
	"context"
	"time"
)

// ReadThrough loads a value with fn on a miss and keeps it for ttl.
type ReadThrough[V any, I any] struct {
	cache Manager[V]
	fn    func(ctx context.Context, input I) (V, error)
	ttl   time.Duration
}

func NewReadThrough[V any, I any](cache Manager[V], ttl time.Duration, fn func(ctx context.Context, input I) (V, error)) *ReadThrough[V, I] {
	return &ReadThrough[V, I]{cache: cache, fn: fn, ttl: ttl}
}

// Get returns the cached value for key, or calls fn with input and caches a
// successful result. Errors are never cached.
func (r *ReadThrough[V, I]) Get(ctx context.Context, key string, input I) (V, error) {
	if v, ok := r.cache.Get(ctx, key); ok {
		return v, nil
	}

	v, err := r.fn(ctx, input)
	if err != nil {
		return v, err
	}
	r.cache.Set(ctx, key, v, r.ttl)
	return v, nil
}

// Invalidate drops key so the next Get reloads it.
func (r *ReadThrough[V, I]) Invalidate(ctx context.Context, key string) {
	r.cache.Delete(ctx, key)
}

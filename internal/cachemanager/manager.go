// Package cachemanager holds short-lived results of expensive git reads,
// keyed by repository root.
package cachemanager

import (
	"context"
	"time"
)

// Manager is a typed key/value cache with per-entry expiry.
type Manager[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
	Flush(ctx context.Context)
}

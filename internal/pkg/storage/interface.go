package storage

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a byte-oriented key/value store with per-key expiry.
type Cache interface {
	// Get returns ErrCacheMiss when nothing is stored under key
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value for ttl
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Close closes the connection
	Close() error
}

// Package cache stores finished mazes so repeated runs with the same
// algorithm, size and seed skip generation.
//
// Engines are deterministic for a given seed, so a cached grid is exactly the
// grid a fresh run would carve. Entries are opaque byte slices; the pipeline
// stores the JSON document produced by the sink package.
//
// Two implementations are provided: [FileCache] for the CLI and [NullCache]
// when caching is disabled.
package cache

import (
	"context"
	"time"
)

// TTLGrid is how long a cached grid stays valid. Engine changes between
// releases can alter the maze a seed produces, so entries do expire.
const TTLGrid = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// GridKeyOpts are the inputs that determine a generated grid.
type GridKeyOpts struct {
	Algorithm string
	Size      int
	Seed      uint64
}

// Keyer derives cache keys.
type Keyer interface {
	GridKey(opts GridKeyOpts) string
}

// DefaultKeyer prefixes keys with their kind and the build version.
type DefaultKeyer struct {
	version string
}

// NewDefaultKeyer creates a keyer scoped to version. Keys from different
// versions never collide.
func NewDefaultKeyer(version string) *DefaultKeyer {
	return &DefaultKeyer{version: version}
}

// GridKey returns the key for a generated grid.
func (k *DefaultKeyer) GridKey(opts GridKeyOpts) string {
	return hashKey("grid", k.version, opts.Algorithm, opts.Size, opts.Seed)
}

var _ Keyer = (*DefaultKeyer)(nil)

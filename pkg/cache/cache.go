// Package cache stores finished distance grids so that a repeated run over
// the same input with the same options can skip the wavefront engine.
//
// Backends:
//   - [FileCache]: entries under a local directory, used by the CLI
//   - [RedisCache]: a shared Redis instance, selected with a redis:// URL
//   - [NullCache]: caching disabled
//
// Keys come from a [Keyer]. [DefaultKeyer] derives them from the hash of
// the prepared seed grid plus every option that changes the result.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long a cached result stays valid.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss
	// (hit == false) and not an error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ResultKeyOpts lists the run options that influence a distance grid.
type ResultKeyOpts struct {
	Cap          int32  `json:"cap"`
	Connectivity string `json:"connectivity"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ResultKey returns the key of the distance grid computed from the seed
	// grid with hash gridHash.
	ResultKey(gridHash string, opts ResultKeyOpts) string
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns a [DefaultKeyer].
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey implements [Keyer].
func (DefaultKeyer) ResultKey(gridHash string, opts ResultKeyOpts) string {
	return hashKey("result", gridHash, opts)
}

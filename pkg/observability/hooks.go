// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about wavefront runs, cache operations, and raster I/O.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Engine().OnRunStart(ctx, runID, cells, strategy)
//	// ... propagate ...
//	observability.Engine().OnRunComplete(ctx, runID, rounds, changes, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives events from the wavefront engine.
type EngineHooks interface {
	// OnRunStart is called once before the first round.
	OnRunStart(ctx context.Context, runID string, cells int, strategy string)

	// OnRoundComplete is called after each round's barrier with the frontier
	// value that was expanded, the value assigned and the cells claimed.
	OnRoundComplete(ctx context.Context, runID string, round int, value int32, changes int64)

	// OnFillComplete is called after the fill-remaining pass.
	OnFillComplete(ctx context.Context, runID string, filled int64)

	// OnRunComplete is called once the run has finished.
	OnRunComplete(ctx context.Context, runID string, rounds int, changes int64, duration time.Duration)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Raster Hooks
// =============================================================================

// RasterHooks receives events from raster drivers.
type RasterHooks interface {
	// OnLoad records a raster read.
	OnLoad(ctx context.Context, driver, path string, width, height int, duration time.Duration, err error)

	// OnWrite records a raster write.
	OnWrite(ctx context.Context, driver, path string, bytes int64, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnRunStart(context.Context, string, int, string)                  {}
func (NoopEngineHooks) OnRoundComplete(context.Context, string, int, int32, int64)       {}
func (NoopEngineHooks) OnFillComplete(context.Context, string, int64)                    {}
func (NoopEngineHooks) OnRunComplete(context.Context, string, int, int64, time.Duration) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopRasterHooks is a no-op implementation of RasterHooks.
type NoopRasterHooks struct{}

func (NoopRasterHooks) OnLoad(context.Context, string, string, int, int, time.Duration, error) {}
func (NoopRasterHooks) OnWrite(context.Context, string, string, int64, time.Duration, error)   {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	engineHooks EngineHooks = NoopEngineHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	rasterHooks RasterHooks = NoopRasterHooks{}
	hooksMu     sync.RWMutex
)

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup before any run.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetRasterHooks registers custom raster I/O hooks.
func SetRasterHooks(h RasterHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		rasterHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Raster returns the registered raster hooks.
func Raster() RasterHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return rasterHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
	cacheHooks = NoopCacheHooks{}
	rasterHooks = NoopRasterHooks{}
}

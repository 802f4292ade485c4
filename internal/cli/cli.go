// Package cli implements the costdistance command-line interface.
//
// # Commands
//
//   - run: compute a distance raster from a seed raster
//   - cache: inspect or clear the result cache
//   - completion: generate shell completion scripts
//
// All commands accept --verbose (-v) for debug logging, which includes the
// per-round wavefront diagnostics.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/SpatialFocus/RasterCostDistance/pkg/buildinfo"
	"github.com/SpatialFocus/RasterCostDistance/pkg/cache"
	"github.com/SpatialFocus/RasterCostDistance/pkg/pipeline"
)

// appName names the binary and its cache directory.
const appName = "costdistance"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// newRunner creates a pipeline runner with the cache selected by the flags.
// The caller closes the returned cache.
func (c *CLI) newRunner(ctx context.Context, useCache bool, cacheURL string) (*pipeline.Runner, cache.Cache, error) {
	rc, err := newCache(ctx, useCache, cacheURL)
	if err != nil {
		return nil, nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	return pipeline.NewRunner(rc, keyer, loggerFromContext(ctx)), rc, nil
}

// newCache opens the result cache. Without a usable cache directory the run
// proceeds uncached.
func newCache(ctx context.Context, useCache bool, cacheURL string) (cache.Cache, error) {
	if !useCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil && cacheURL == "" {
		return cache.NewNullCache(), nil
	}
	return cache.Open(ctx, cacheURL, dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/costdistance/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

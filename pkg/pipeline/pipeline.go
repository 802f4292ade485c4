// Package pipeline runs a complete cost-distance job: load the seed raster,
// prepare the seed grid, propagate distances and write the result.
//
// The CLI and tests share this package so that every entry point applies the
// same defaults, validation and caching.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Input:        "seeds.tif",
//	    Output:       "distance.tif",
//	    MaxDistance:  100,
//	    Connectivity: "hybrid",
//	})
//
// A load failure is returned as a coded error for which
// [errors.IsNoInput] reports true; nothing is written in that case.
//
// [errors.IsNoInput]: github.com/SpatialFocus/RasterCostDistance/pkg/errors.IsNoInput
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/SpatialFocus/RasterCostDistance/pkg/config"
	"github.com/SpatialFocus/RasterCostDistance/pkg/wavefront"
)

// Options configures one pipeline run.
type Options struct {
	Input  string
	Output string

	// MaxDistance caps distances. Zero is unbounded.
	MaxDistance int32

	// Connectivity is n4, n8 or hybrid. Empty uses hybrid.
	Connectivity string

	// Workers bounds engine goroutines. Zero uses GOMAXPROCS.
	Workers int

	// SeedValue marks seed cells in the input. Zero uses 1.
	SeedValue int32

	// Compression is passed to the raster sink. Empty uses deflate.
	Compression string

	// Refresh skips the cache lookup; the fresh result is still stored.
	Refresh bool

	Logger *log.Logger

	validated bool
}

// FromConfig converts loaded settings into options.
func FromConfig(cfg config.Config) Options {
	return Options{
		Input:        cfg.Input,
		Output:       cfg.Output,
		MaxDistance:  cfg.MaxDistance,
		Connectivity: cfg.Connectivity,
		Workers:      cfg.Workers,
		SeedValue:    cfg.SeedValue,
		Compression:  cfg.Compression,
	}
}

// ValidateAndSetDefaults fills empty fields from [config.Defaults] and
// validates the result. Calling it again is a no-op.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	def := config.Defaults()
	if o.Connectivity == "" {
		o.Connectivity = def.Connectivity
	}
	if o.SeedValue == 0 {
		o.SeedValue = def.SeedValue
	}
	if o.Compression == "" {
		o.Compression = def.Compression
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := o.config().Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// Strategy resolves the connectivity name.
func (o *Options) Strategy() (wavefront.Strategy, error) {
	return o.config().Strategy()
}

func (o *Options) config() config.Config {
	return config.Config{
		Input:        o.Input,
		Output:       o.Output,
		MaxDistance:  o.MaxDistance,
		Connectivity: o.Connectivity,
		Workers:      o.Workers,
		SeedValue:    o.SeedValue,
		Compression:  o.Compression,
	}
}

// Result describes a finished run.
type Result struct {
	RunID  string
	Output string

	Width  int
	Height int

	// Seeds is the number of seed cells found in the input.
	Seeds int

	// Engine holds the wavefront diagnostics. On a cache hit they are the
	// diagnostics of the run that produced the cached grid.
	Engine wavefront.Result

	// CacheHit reports whether the distances came from the cache.
	CacheHit bool

	Stats Stats
}

// Stats holds stage timings.
type Stats struct {
	LoadTime    time.Duration
	ComputeTime time.Duration
	WriteTime   time.Duration
}

// Total returns the summed stage time.
func (s Stats) Total() time.Duration {
	return s.LoadTime + s.ComputeTime + s.WriteTime
}

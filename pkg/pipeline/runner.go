package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/SpatialFocus/RasterCostDistance/pkg/cache"
	"github.com/SpatialFocus/RasterCostDistance/pkg/errors"
	"github.com/SpatialFocus/RasterCostDistance/pkg/grid"
	"github.com/SpatialFocus/RasterCostDistance/pkg/observability"
	"github.com/SpatialFocus/RasterCostDistance/pkg/raster"
	"github.com/SpatialFocus/RasterCostDistance/pkg/wavefront"
)

const resultKeyType = "result"

// Runner executes pipeline runs against a raster store and a result cache.
// It keeps no per-run state; concurrent Execute calls are safe as long as
// they write different outputs.
type Runner struct {
	Source raster.Source
	Sink   raster.Sink
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner reading and writing local files.
// A nil cache disables caching, a nil keyer uses [cache.DefaultKeyer] and a
// nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	files := raster.NewFiles()
	return &Runner{
		Source: files,
		Sink:   files,
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs load, seed preparation, propagation and write.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	strategy, err := opts.Strategy()
	if err != nil {
		return nil, err
	}

	res := &Result{RunID: uuid.NewString(), Output: opts.Output}
	logger := opts.Logger.With("run", res.RunID[:8])

	loadStart := time.Now()
	ras, err := r.Source.Load(ctx, opts.Input)
	if err != nil {
		return nil, err
	}
	res.Stats.LoadTime = time.Since(loadStart)
	res.Width, res.Height = ras.Width, ras.Height
	res.Seeds = raster.PrepareSeeds(ras, raster.SeedOptions{SeedValue: opts.SeedValue})
	logger.Info("loaded input",
		"path", opts.Input,
		"driver", ras.Driver,
		"size", ras.Width*ras.Height,
		"seeds", res.Seeds,
		"duration", res.Stats.LoadTime)
	if res.Seeds == 0 {
		logger.Warn("input contains no seed cells", "seed_value", opts.SeedValue)
	}

	g, err := ras.Grid()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnreadable, err, "read %s", opts.Input)
	}

	computeStart := time.Now()
	res.Engine, res.CacheHit = r.compute(ctx, g, strategy, opts, res.RunID, logger)
	res.Stats.ComputeTime = time.Since(computeStart)
	logger.Info("computed distances",
		"strategy", strategy.Name(),
		"rounds", res.Engine.Rounds,
		"changes", res.Engine.Changes,
		"filled", res.Engine.Filled,
		"cached", res.CacheHit,
		"duration", res.Stats.ComputeTime)

	writeStart := time.Now()
	if err := r.Sink.Write(ctx, opts.Output, ras, raster.WriteOptions{Compression: opts.Compression}); err != nil {
		return nil, err
	}
	res.Stats.WriteTime = time.Since(writeStart)
	logger.Info("wrote output", "path", opts.Output, "duration", res.Stats.WriteTime)

	return res, nil
}

// applyLogger falls back to the runner's logger when opts has none.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// compute fills g with distances, from the cache when possible. Cache
// failures are logged and never fail the run.
func (r *Runner) compute(ctx context.Context, g *grid.Grid, strategy wavefront.Strategy, opts Options, runID string, logger *log.Logger) (wavefront.Result, bool) {
	engine := wavefront.New(wavefront.Options{
		Cap:      opts.MaxDistance,
		Strategy: strategy,
		Workers:  opts.Workers,
		RunID:    runID,
		Logger:   logger,
	})
	if _, disabled := r.Cache.(cache.NullCache); disabled {
		return engine.Run(ctx, g), false
	}

	key := r.Keyer.ResultKey(cache.HashGrid(g.Width, g.Height, g.Cells()), cache.ResultKeyOpts{
		Cap:          opts.MaxDistance,
		Connectivity: strategy.Name(),
	})

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			logger.Warn("cache lookup failed", "error", err)
		}
		if hit {
			if er, ok := applyCached(g, data); ok {
				observability.Cache().OnCacheHit(ctx, resultKeyType)
				logger.Debug("cache hit", "key", key)
				er.RunID = runID
				return er, true
			}
			logger.Warn("discarding unusable cache entry", "key", key)
		}
		observability.Cache().OnCacheMiss(ctx, resultKeyType)
	}

	er := engine.Run(ctx, g)

	data, err := encodeCached(g, er)
	if err == nil {
		err = r.Cache.Set(ctx, key, data, cache.DefaultTTL)
	}
	if err != nil {
		logger.Warn("cache store failed", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, resultKeyType, len(data))
	}
	return er, false
}

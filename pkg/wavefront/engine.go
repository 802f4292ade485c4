package wavefront

import (
	"context"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/SpatialFocus/RasterCostDistance/pkg/grid"
	"github.com/SpatialFocus/RasterCostDistance/pkg/observability"
)

// minChunk is the smallest index range handed to one worker task.
const minChunk = 4096

// Options configures an [Engine].
type Options struct {
	// Cap is the maximum distance value. Zero means unbounded.
	Cap int32

	// Strategy selects the neighbour set. Nil defaults to [N4].
	Strategy Strategy

	// Workers bounds the goroutines scanning a round. Zero or less uses
	// runtime.GOMAXPROCS(0).
	Workers int

	// RunID tags log lines and hook events.
	RunID string

	// Logger receives per-round debug output. Nil discards.
	Logger *log.Logger
}

// Result holds the diagnostics of one run.
type Result struct {
	RunID    string
	Strategy string
	Cap      int32

	// Rounds is the number of wavefront rounds executed, including the final
	// round that claimed nothing. With a cap, rounds after cap-1 would only write
	// the cap again, so they are never run or counted; Fill claims those cells.
	Rounds int

	// Changes is the number of cells claimed by the rounds.
	Changes int64

	// PerRound holds the claim count of each round in order.
	PerRound []int64

	// Filled is the number of cells set by the fill-remaining pass.
	Filled int64

	Duration time.Duration
}

// Engine runs round-synchronous wavefront propagation over a grid.
// An Engine holds no per-run state and may be reused across grids, but a
// single grid must not be passed to two concurrent runs.
type Engine struct {
	cap      int32
	strategy Strategy
	workers  int
	runID    string
	logger   *log.Logger
	chunkMin int
}

// New creates an engine from opts, applying defaults.
func New(opts Options) *Engine {
	e := &Engine{
		cap:      opts.Cap,
		strategy: opts.Strategy,
		workers:  opts.Workers,
		runID:    opts.RunID,
		logger:   opts.Logger,
		chunkMin: minChunk,
	}
	if e.cap < 0 {
		e.cap = 0
	}
	if e.strategy == nil {
		e.strategy = N4{}
	}
	if e.workers <= 0 {
		e.workers = runtime.GOMAXPROCS(0)
	}
	if e.logger == nil {
		e.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return e
}

// Run propagates distances from the seed cells of g in place.
//
// Round r expands every cell holding r, proposing min(r+1, cap) to its
// unclaimed neighbours. A barrier separates rounds. The loop ends when a
// round claims nothing or, with a cap, when r reaches the cap; the remaining
// unclaimed cells are then set to the cap by [Fill].
//
// ctx carries observability data only; a run always completes.
func (e *Engine) Run(ctx context.Context, g *grid.Grid) Result {
	start := time.Now()
	hooks := observability.Engine()
	hooks.OnRunStart(ctx, e.runID, g.Len(), e.strategy.Name())

	res := Result{
		RunID:    e.runID,
		Strategy: e.strategy.Name(),
		Cap:      e.cap,
	}

	for r := int32(1); e.cap == 0 || r < e.cap; r++ {
		value := e.valueFor(r)
		changes := e.round(g, r, value)

		res.Rounds++
		res.Changes += changes
		res.PerRound = append(res.PerRound, changes)

		e.logger.Debug("round complete", "run", e.runID, "round", r, "value", value, "changes", changes)
		hooks.OnRoundComplete(ctx, e.runID, int(r), value, changes)

		if changes == 0 {
			break
		}
	}

	if e.cap > 0 {
		res.Filled = e.fill(g)
		e.logger.Debug("fill complete", "run", e.runID, "cap", e.cap, "filled", res.Filled)
		hooks.OnFillComplete(ctx, e.runID, res.Filled)
	}

	res.Duration = time.Since(start)
	hooks.OnRunComplete(ctx, e.runID, res.Rounds, res.Changes, res.Duration)
	return res
}

// valueFor returns the value proposed during round r.
func (e *Engine) valueFor(r int32) int32 {
	v := r + 1
	if e.cap > 0 && v > e.cap {
		v = e.cap
	}
	return v
}

// round expands every cell equal to frontier and returns the number of
// cells claimed. It returns only after all workers have finished.
func (e *Engine) round(g *grid.Grid, frontier, value int32) int64 {
	s := ForValue(e.strategy, value)
	return e.parallel(g.Len(), func(lo, hi int) int64 {
		var n int64
		for i := lo; i < hi; i++ {
			if g.Load(i) == frontier {
				n += int64(s.Expand(g, i, value))
			}
		}
		return n
	})
}

// fill runs the fill-remaining pass with the engine's worker settings.
func (e *Engine) fill(g *grid.Grid) int64 {
	return e.parallel(g.Len(), func(lo, hi int) int64 {
		return fillRange(g, lo, hi, e.cap)
	})
}

// parallel splits [0, n) into contiguous chunks, runs fn on each with at
// most e.workers goroutines, and returns the summed results once every chunk
// is done.
func (e *Engine) parallel(n int, fn func(lo, hi int) int64) int64 {
	chunk := (n + e.workers - 1) / e.workers
	if chunk < e.chunkMin {
		chunk = e.chunkMin
	}

	var total atomic.Int64
	var eg errgroup.Group
	eg.SetLimit(e.workers)
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		eg.Go(func() error {
			if c := fn(lo, hi); c != 0 {
				total.Add(c)
			}
			return nil
		})
	}
	_ = eg.Wait() // workers never fail
	return total.Load()
}

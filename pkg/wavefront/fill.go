package wavefront

import (
	"github.com/SpatialFocus/RasterCostDistance/pkg/grid"
)

// Fill sets every cell still holding [grid.Unclaimed] to limit and returns
// how many cells it changed. Claimed cells are never touched. A limit of zero
// or less is a no-op, matching unbounded runs where unreached cells keep the
// sentinel.
func Fill(g *grid.Grid, limit int32) int64 {
	if limit <= 0 {
		return 0
	}
	return fillRange(g, 0, g.Len(), limit)
}

func fillRange(g *grid.Grid, lo, hi int, limit int32) int64 {
	var n int64
	for i := lo; i < hi; i++ {
		if g.CompareAndSwap(i, grid.Unclaimed, limit) {
			n++
		}
	}
	return n
}

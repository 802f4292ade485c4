package raster

import (
	"github.com/SpatialFocus/RasterCostDistance/pkg/grid"
)

// SeedOptions controls [PrepareSeeds].
type SeedOptions struct {
	// SeedValue is the source value marking seed cells. Zero defaults to 1.
	SeedValue int32
}

// PrepareSeeds rewrites ras.Cells in place so that cells equal to the seed
// value become [grid.SeedValue] and every other cell, NoData included,
// becomes [grid.Unclaimed]. It returns the number of seeds.
//
// A NoData value equal to the seed value wins: such cells are not seeds.
func PrepareSeeds(ras *Raster, opts SeedOptions) int {
	seed := opts.SeedValue
	if seed == 0 {
		seed = grid.SeedValue
	}
	noData, hasNoData := noDataCell(ras)

	n := 0
	for i, v := range ras.Cells {
		if v == seed && !(hasNoData && v == noData) {
			ras.Cells[i] = grid.SeedValue
			n++
			continue
		}
		ras.Cells[i] = grid.Unclaimed
	}
	return n
}

// noDataCell returns the NoData value as a cell value when it is integral.
func noDataCell(ras *Raster) (int32, bool) {
	if !ras.HasNoData {
		return 0, false
	}
	v := int32(ras.NoData)
	if float64(v) != ras.NoData {
		return 0, false
	}
	return v, true
}

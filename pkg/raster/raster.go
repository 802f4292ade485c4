package raster

import (
	"context"

	"github.com/SpatialFocus/RasterCostDistance/pkg/grid"
)

// Compression names accepted in [WriteOptions].
const (
	CompressionNone    = "none"
	CompressionDeflate = "deflate"
)

// Raster is a single-band integer raster together with the metadata needed
// to write it back in the same georeferenced frame.
type Raster struct {
	Width  int
	Height int
	Cells  []int32

	HasNoData bool
	NoData    float64

	// Projection is the coordinate reference system text (WKT or PROJ),
	// empty when unknown.
	Projection string

	// Transform locates the raster in map space. Nil when the format does
	// not carry it inline.
	Transform *Transform

	// Driver names the driver that loaded the raster.
	Driver string

	// Path is the file the raster was loaded from, if any.
	Path string
}

// Transform is the affine placement of an axis-aligned raster with square
// cells, as carried by ASCII grids.
type Transform struct {
	OriginX  float64 // x of the lower-left corner or center
	OriginY  float64 // y of the lower-left corner or center
	CellSize float64
	Center   bool // origin refers to the lower-left cell center
}

// WriteOptions controls encoding of an output raster.
type WriteOptions struct {
	// Compression is CompressionNone or CompressionDeflate. Drivers without
	// compression support ignore it.
	Compression string
}

// Source loads rasters.
type Source interface {
	Load(ctx context.Context, path string) (*Raster, error)
}

// Sink persists rasters, replacing any file already at path.
type Sink interface {
	Write(ctx context.Context, path string, r *Raster, opts WriteOptions) error
}

// Grid wraps the raster's cell buffer as a grid. The buffer is shared, so
// engine writes are visible through r.Cells.
func (r *Raster) Grid() (*grid.Grid, error) {
	return grid.New(r.Width, r.Height, r.Cells)
}

// WithCells returns a shallow copy of r carrying cells instead of r.Cells.
func (r *Raster) WithCells(cells []int32) *Raster {
	out := *r
	out.Cells = cells
	return &out
}

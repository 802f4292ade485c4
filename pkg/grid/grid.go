package grid

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
)

const (
	// Unclaimed is the sentinel for cells not yet reached.
	Unclaimed int32 = 0

	// SeedValue is the value callers assign to source cells.
	SeedValue int32 = 1
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates a width or height below one.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")

	// ErrSizeMismatch indicates a cell buffer whose length is not width*height.
	ErrSizeMismatch = errors.New("grid: cell buffer length does not match dimensions")
)

// Grid is a dense row-major raster of int32 cells.
// Width and Height are fixed after construction.
type Grid struct {
	Width  int
	Height int
	cells  []int32
}

// New wraps cells as a width x height grid. The slice is used in place and is
// mutated by the engine; callers that need the original values must copy it.
// A nil cells slice allocates a zeroed buffer.
func New(width, height int, cells []int32) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	n := width * height
	if cells == nil {
		cells = make([]int32, n)
	}
	if len(cells) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(cells), n)
	}
	return &Grid{Width: width, Height: height, cells: cells}, nil
}

// FromRows builds a grid from a rectangular 2D slice indexed [y][x].
// The rows are copied.
func FromRows(rows [][]int32) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	cells := make([]int32, 0, w*len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrSizeMismatch, y, len(row), w)
		}
		cells = append(cells, row...)
	}
	return New(w, len(rows), cells)
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index maps (x, y) to its row-major index.
func (g *Grid) Index(x, y int) int {
	return x + y*g.Width
}

// Coords converts a row-major index back to (x, y).
func (g *Grid) Coords(i int) (x, y int) {
	return i % g.Width, i / g.Width
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Load atomically reads cell i.
func (g *Grid) Load(i int) int32 {
	return atomic.LoadInt32(&g.cells[i])
}

// Store atomically writes v to cell i.
func (g *Grid) Store(i int, v int32) {
	atomic.StoreInt32(&g.cells[i], v)
}

// CompareAndSwap sets cell i to new only if it currently holds old.
func (g *Grid) CompareAndSwap(i int, old, new int32) bool {
	return atomic.CompareAndSwapInt32(&g.cells[i], old, new)
}

// At returns the value at (x, y). It panics if (x, y) is out of bounds.
func (g *Grid) At(x, y int) int32 {
	return g.Load(g.Index(x, y))
}

// Seed marks (x, y) as a source cell. Out-of-bounds coordinates are ignored
// and reported as false.
func (g *Grid) Seed(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.Store(g.Index(x, y), SeedValue)
	return true
}

// Cells returns a copy of the buffer.
func (g *Grid) Cells() []int32 {
	out := make([]int32, len(g.cells))
	for i := range g.cells {
		out[i] = g.Load(i)
	}
	return out
}

// Rows returns a copy of the grid as a [y][x] slice.
func (g *Grid) Rows() [][]int32 {
	cells := g.Cells()
	rows := make([][]int32, g.Height)
	for y := range rows {
		rows[y] = cells[y*g.Width : (y+1)*g.Width : (y+1)*g.Width]
	}
	return rows
}

// Count returns how many cells currently hold v.
func (g *Grid) Count(v int32) int {
	n := 0
	for i := range g.cells {
		if g.Load(i) == v {
			n++
		}
	}
	return n
}

// Max returns the largest cell value.
func (g *Grid) Max() int32 {
	var m int32
	for i := range g.cells {
		if v := g.Load(i); v > m {
			m = v
		}
	}
	return m
}

// String renders the grid as whitespace-separated rows, mainly for tests and
// debug logging of small grids.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", g.At(x, y))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

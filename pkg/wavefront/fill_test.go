package wavefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SpatialFocus/RasterCostDistance/pkg/grid"
)

func TestFillOnlyTouchesUnclaimed(t *testing.T) {
	g, err := grid.FromRows([][]int32{
		{1, 0, 3},
		{0, 2, 0},
	})
	require.NoError(t, err)
	before := g.Cells()

	n := Fill(g, 4)
	assert.Equal(t, int64(3), n)

	after := g.Cells()
	for i := range before {
		if before[i] == grid.Unclaimed {
			assert.Equal(t, int32(4), after[i], "cell %d", i)
		} else {
			assert.Equal(t, before[i], after[i], "cell %d", i)
		}
	}
}

func TestFillIsIdempotent(t *testing.T) {
	g, err := grid.New(3, 3, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(9), Fill(g, 2))
	assert.Zero(t, Fill(g, 5))
	assert.Equal(t, 9, g.Count(2))
}

func TestFillWithoutCapIsNoop(t *testing.T) {
	g, err := grid.New(2, 2, nil)
	require.NoError(t, err)

	assert.Zero(t, Fill(g, 0))
	assert.Zero(t, Fill(g, -3))
	assert.Equal(t, 4, g.Count(grid.Unclaimed))
}

func TestEngineFillMatchesSequential(t *testing.T) {
	cells := make([]int32, 10000)
	for i := range cells {
		if i%7 == 0 {
			cells[i] = 3
		}
	}
	seq, err := grid.New(100, 100, append([]int32(nil), cells...))
	require.NoError(t, err)
	par, err := grid.New(100, 100, append([]int32(nil), cells...))
	require.NoError(t, err)

	e := smallChunks(Options{Cap: 9, Workers: 6})
	e.chunkMin = 64

	assert.Equal(t, Fill(seq, 9), e.fill(par))
	assert.Equal(t, seq.Cells(), par.Cells())
}

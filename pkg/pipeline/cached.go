package pipeline

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/SpatialFocus/RasterCostDistance/pkg/grid"
	"github.com/SpatialFocus/RasterCostDistance/pkg/wavefront"
)

// cachedResult is the cache payload of a finished run. Cells are packed as
// little-endian int32.
type cachedResult struct {
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Strategy string        `json:"strategy"`
	Cap      int32         `json:"cap"`
	Rounds   int           `json:"rounds"`
	Changes  int64         `json:"changes"`
	PerRound []int64       `json:"per_round"`
	Filled   int64         `json:"filled"`
	Duration time.Duration `json:"duration"`
	Cells    []byte        `json:"cells"`
}

func encodeCached(g *grid.Grid, er wavefront.Result) ([]byte, error) {
	cells := g.Cells()
	packed := make([]byte, 4*len(cells))
	for i, v := range cells {
		binary.LittleEndian.PutUint32(packed[4*i:], uint32(v))
	}
	return json.Marshal(cachedResult{
		Width:    g.Width,
		Height:   g.Height,
		Strategy: er.Strategy,
		Cap:      er.Cap,
		Rounds:   er.Rounds,
		Changes:  er.Changes,
		PerRound: er.PerRound,
		Filled:   er.Filled,
		Duration: er.Duration,
		Cells:    packed,
	})
}

// applyCached stores the cached distances into g. It reports false, leaving
// g untouched, when data does not decode or does not fit g.
func applyCached(g *grid.Grid, data []byte) (wavefront.Result, bool) {
	var c cachedResult
	if err := json.Unmarshal(data, &c); err != nil {
		return wavefront.Result{}, false
	}
	if c.Width != g.Width || c.Height != g.Height || len(c.Cells) != 4*g.Len() {
		return wavefront.Result{}, false
	}
	for i := 0; i < g.Len(); i++ {
		g.Store(i, int32(binary.LittleEndian.Uint32(c.Cells[4*i:])))
	}
	return wavefront.Result{
		Strategy: c.Strategy,
		Cap:      c.Cap,
		Rounds:   c.Rounds,
		Changes:  c.Changes,
		PerRound: c.PerRound,
		Filled:   c.Filled,
		Duration: c.Duration,
	}, true
}

package wavefront

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SpatialFocus/RasterCostDistance/pkg/grid"
)

// Strategy claims the unclaimed neighbours of a cell.
//
// Expand attempts to set every eligible neighbour of cell i to value and
// returns how many neighbours it claimed. A neighbour is claimed only if it
// still holds [grid.Unclaimed]; competing claims resolve through the grid's
// compare-and-swap, so exactly one writer wins and the rest are no-ops.
type Strategy interface {
	Name() string
	Expand(g *grid.Grid, i int, value int32) int
}

// ErrUnknownStrategy is returned by [ParseStrategy] for unrecognised names.
var ErrUnknownStrategy = errors.New("wavefront: unknown connectivity")

// Strategy names accepted by [ParseStrategy].
const (
	NameN4     = "n4"
	NameN8     = "n8"
	NameHybrid = "hybrid"
)

var (
	axisOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagOffsets = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

// N4 expands to the four axis-aligned neighbours.
type N4 struct{}

// Name returns "n4".
func (N4) Name() string { return NameN4 }

// Expand claims the left, right, up and down neighbours of i.
func (N4) Expand(g *grid.Grid, i int, value int32) int {
	x, y := g.Coords(i)
	return claimAll(g, x, y, &axisOffsets, value)
}

// N8 expands to the four axis-aligned neighbours plus the four diagonals.
type N8 struct{}

// Name returns "n8".
func (N8) Name() string { return NameN8 }

// Expand claims all eight neighbours of i.
func (N8) Expand(g *grid.Grid, i int, value int32) int {
	x, y := g.Coords(i)
	return claimAll(g, x, y, &axisOffsets, value) + claimAll(g, x, y, &diagOffsets, value)
}

// Hybrid alternates N4 and N8 by the parity of the proposed value: even
// values use N4, odd values use N8. The mix grows closer to a circle than
// either pure connectivity.
type Hybrid struct{}

// Name returns "hybrid".
func (Hybrid) Name() string { return NameHybrid }

// Expand delegates to N4 or N8 depending on value.
func (Hybrid) Expand(g *grid.Grid, i int, value int32) int {
	return ForValue(Hybrid{}, value).Expand(g, i, value)
}

// ForValue resolves the concrete strategy used for a round proposing value.
// Only Hybrid varies; every other strategy is returned as is.
func ForValue(s Strategy, value int32) Strategy {
	if _, ok := s.(Hybrid); !ok {
		return s
	}
	if value%2 == 0 {
		return N4{}
	}
	return N8{}
}

// claimAll tries each offset around (x, y) and returns the number of claims won.
func claimAll(g *grid.Grid, x, y int, offsets *[4][2]int, value int32) int {
	n := 0
	for _, d := range offsets {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		if g.CompareAndSwap(g.Index(nx, ny), grid.Unclaimed, value) {
			n++
		}
	}
	return n
}

// ParseStrategy maps a connectivity name to its strategy.
// Names are case-insensitive; "4" and "8" are accepted as aliases.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameN4, "4":
		return N4{}, nil
	case NameN8, "8":
		return N8{}, nil
	case NameHybrid:
		return Hybrid{}, nil
	}
	return nil, fmt.Errorf("%w: %q (must be one of: n4, n8, hybrid)", ErrUnknownStrategy, name)
}

// StrategyNames lists the accepted connectivity names.
func StrategyNames() []string {
	return []string{NameN4, NameN8, NameHybrid}
}

package wavefront_test

import (
	"context"
	"fmt"

	"github.com/SpatialFocus/RasterCostDistance/pkg/grid"
	"github.com/SpatialFocus/RasterCostDistance/pkg/wavefront"
)

// ExampleEngine_Run grows a single seed with 4-connectivity.
func ExampleEngine_Run() {
	g, _ := grid.New(5, 3, nil)
	g.Seed(0, 1)

	res := wavefront.New(wavefront.Options{Strategy: wavefront.N4{}}).Run(context.Background(), g)

	fmt.Print(g)
	fmt.Println("rounds:", res.Rounds, "changes:", res.Changes)
	// Output:
	// 2 3 4 5 6
	// 1 2 3 4 5
	// 2 3 4 5 6
	// rounds: 6 changes: 14
}

// ExampleEngine_Run_cap clamps distances to a maximum and fills the rest.
func ExampleEngine_Run_cap() {
	g, _ := grid.New(6, 1, nil)
	g.Seed(0, 0)

	res := wavefront.New(wavefront.Options{Cap: 3, Strategy: wavefront.N8{}}).Run(context.Background(), g)

	fmt.Print(g)
	fmt.Println("filled:", res.Filled)
	// Output:
	// 1 2 3 3 3 3
	// filled: 3
}

// ExampleHybrid compares the three connectivities on the same seed.
func ExampleHybrid() {
	for _, s := range []wavefront.Strategy{wavefront.N4{}, wavefront.N8{}, wavefront.Hybrid{}} {
		g, _ := grid.New(7, 1, nil)
		g.Seed(3, 0)
		wavefront.New(wavefront.Options{Strategy: s}).Run(context.Background(), g)
		fmt.Printf("%-6s %v\n", s.Name(), g.Cells())
	}
	// Output:
	// n4     [4 3 2 1 2 3 4]
	// n8     [4 3 2 1 2 3 4]
	// hybrid [4 3 2 1 2 3 4]
}

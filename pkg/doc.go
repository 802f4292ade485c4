// Package pkg holds the libraries behind the costdistance command.
//
// # Overview
//
// A seed raster marks source cells with 1. Costdistance propagates a
// wavefront from every seed at once and labels each cell with its hop
// distance to the nearest seed, seeds included as 1. The work is split into
// layers:
//
//  1. [grid] - flat cell buffer with atomic per-cell claims
//  2. [wavefront] - round-synchronous parallel propagation and the
//     fill-remaining pass
//  3. [raster] - GeoTIFF and ESRI ASCII grid drivers, sidecars, seed
//     preparation
//  4. [pipeline] - load, propagate and write, with a result [cache]
//
// # Data flow
//
//	seed raster (GTiff / AAIGrid)
//	         ↓
//	    [raster] Load + PrepareSeeds
//	         ↓
//	    [grid] Grid (shares the raster's cells)
//	         ↓
//	    [wavefront] Engine.Run (rounds, then Fill when capped)
//	         ↓
//	    [raster] Write (+ georeference sidecars)
//
// # Quick start
//
//	g, _ := grid.FromRows([][]int32{
//	    {0, 0, 0},
//	    {0, 1, 0},
//	    {0, 0, 0},
//	})
//	res := wavefront.New(wavefront.Options{Strategy: wavefront.N4{}}).Run(ctx, g)
//	fmt.Print(g)            // 3 2 3 / 2 1 2 / 3 2 3
//	fmt.Println(res.Rounds) // 3
//
// Supporting packages: [config] loads TOML run files, [errors] defines the
// coded errors surfaced by the CLI, [observability] exposes engine, cache and
// raster hooks, and [buildinfo] carries link-time version data.
//
// [grid]: https://pkg.go.dev/github.com/SpatialFocus/RasterCostDistance/pkg/grid
// [wavefront]: https://pkg.go.dev/github.com/SpatialFocus/RasterCostDistance/pkg/wavefront
// [raster]: https://pkg.go.dev/github.com/SpatialFocus/RasterCostDistance/pkg/raster
// [pipeline]: https://pkg.go.dev/github.com/SpatialFocus/RasterCostDistance/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/SpatialFocus/RasterCostDistance/pkg/cache
// [config]: https://pkg.go.dev/github.com/SpatialFocus/RasterCostDistance/pkg/config
// [errors]: https://pkg.go.dev/github.com/SpatialFocus/RasterCostDistance/pkg/errors
// [observability]: https://pkg.go.dev/github.com/SpatialFocus/RasterCostDistance/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/SpatialFocus/RasterCostDistance/pkg/buildinfo
package pkg

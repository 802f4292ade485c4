// Package wavefront computes multi-source hop distances over a grid.
//
// Seed cells hold 1 and every other cell holds 0. An [Engine] grows the seeds
// outward one ring per round: round r visits every cell equal to r and
// claims its unclaimed neighbours with r+1, so a cell's final value is one
// plus its hop distance to the nearest seed.
//
// # Connectivity
//
// The neighbour set is chosen by a [Strategy]:
//
//   - [N4]: left, right, up, down
//   - [N8]: N4 plus the four diagonals (king moves)
//   - [Hybrid]: N4 on even proposed values, N8 on odd ones
//
// # Concurrency
//
// Each round scans all cells in parallel chunks. Cells are claimed with an
// atomic compare-and-swap from 0, and every claimant in a round proposes the
// same value, so the final grid does not depend on scheduling. Rounds are
// separated by a barrier.
//
// # Distance cap
//
// With a positive cap the loop stops once the frontier reaches the cap and
// [Fill] assigns the cap to every cell left at 0. Without a cap unreachable
// cells stay at 0.
//
// # Example
//
//	g, _ := grid.New(w, h, cells)
//	res := wavefront.New(wavefront.Options{Cap: 50, Strategy: wavefront.Hybrid{}}).Run(ctx, g)
//	fmt.Println(res.Rounds, res.Changes, res.Filled)
package wavefront

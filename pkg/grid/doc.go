// Package grid provides the dense raster buffer the wavefront engine works on.
//
// A [Grid] is a row-major slice of int32 values with a width and a height.
// Cell (x, y) lives at index x + y*Width. The package contains no propagation
// logic; it only offers bounds-safe addressing and atomic slot access so that
// several goroutines can claim cells of the same buffer without locks.
//
// # Cell values
//
//   - [Unclaimed] (0) marks a cell no wavefront has reached yet.
//   - [SeedValue] (1) marks a source cell placed by the caller.
//   - Any other positive value is the hop count plus one at which the cell
//     was first reached.
//
// # Concurrency
//
// [Grid.Load], [Grid.Store] and [Grid.CompareAndSwap] are atomic and safe to
// call from any number of goroutines. [Grid.Cells] returns a copy and should
// only be used once mutation has finished.
package grid

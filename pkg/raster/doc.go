// Package raster reads and writes the single-band rasters that feed the
// wavefront engine.
//
// # Drivers
//
// A [Driver] handles one file format and is picked by file extension:
//
//   - GTiff (.tif, .tiff): grayscale TIFF via golang.org/x/image/tiff.
//     Output is 16-bit; values are clamped to [0, 65535].
//   - AAIGrid (.asc): ESRI ASCII grid with an inline header.
//
// TIFF georeferencing is carried by sidecar files. [Files] copies any .prj,
// world file (.tfw, .tifw, .wld) or .aux.xml found next to the source to the
// output under the output's base name.
//
// # Errors
//
// Loading fails with a coded error: SOURCE_NOT_FOUND when the file is
// absent, SOURCE_UNREADABLE when it cannot be opened or decoded. Write
// failures are SINK_FAILED.
//
// # Seeds
//
// [PrepareSeeds] rewrites a loaded raster so that seed cells hold 1 and all
// other cells hold the unclaimed value 0, which is what the engine expects.
package raster

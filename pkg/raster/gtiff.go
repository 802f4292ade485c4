package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"golang.org/x/image/tiff"
)

// GTiff reads and writes single-band grayscale TIFF files.
//
// 8- and 16-bit gray images decode to their pixel values, paletted images to
// their palette index. Any other color model is reduced to 16-bit luminance.
type GTiff struct{}

func (GTiff) Name() string                  { return "GTiff" }
func (GTiff) Supports(filename string) bool { return hasExt(filename, ".tif", ".tiff") }

// Decode reads a TIFF image into a raster.
func (GTiff) Decode(r io.Reader) (*Raster, error) {
	img, err := tiff.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode tiff: %w", err)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("decode tiff: empty image")
	}

	cells := make([]int32, w*h)
	switch m := img.(type) {
	case *image.Gray:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				cells[x+y*w] = int32(m.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			}
		}
	case *image.Gray16:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				cells[x+y*w] = int32(m.Gray16At(b.Min.X+x, b.Min.Y+y).Y)
			}
		}
	case *image.Paletted:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				cells[x+y*w] = int32(m.ColorIndexAt(b.Min.X+x, b.Min.Y+y))
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
				cells[x+y*w] = int32(c.Y)
			}
		}
	}

	return &Raster{Width: w, Height: h, Cells: cells, Driver: GTiff{}.Name()}, nil
}

// Encode writes ras as a 16-bit grayscale TIFF. Cells outside [0, 65535]
// are clamped.
func (GTiff) Encode(w io.Writer, ras *Raster, opts WriteOptions) error {
	img := image.NewGray16(image.Rect(0, 0, ras.Width, ras.Height))
	for y := 0; y < ras.Height; y++ {
		for x := 0; x < ras.Width; x++ {
			v := ras.Cells[x+y*ras.Width]
			img.SetGray16(x, y, color.Gray16{Y: clampUint16(v)})
		}
	}

	topts := &tiff.Options{Compression: tiff.Uncompressed}
	if opts.Compression == CompressionDeflate {
		topts = &tiff.Options{Compression: tiff.Deflate}
	}
	if err := tiff.Encode(w, img, topts); err != nil {
		return fmt.Errorf("encode tiff: %w", err)
	}
	return nil
}

func clampUint16(v int32) uint16 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(v)
}

package raster

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// AAIGrid reads and writes ESRI ASCII grids.
//
// The header carries ncols, nrows, the lower-left corner or center, the
// cell size and an optional NODATA_value. Fractional cell values are rounded
// to the nearest integer.
type AAIGrid struct{}

// maxCells bounds the grid size a header may declare.
const maxCells = 1 << 28

func (AAIGrid) Name() string                  { return "AAIGrid" }
func (AAIGrid) Supports(filename string) bool { return hasExt(filename, ".asc") }

// Decode parses an ASCII grid.
func (AAIGrid) Decode(r io.Reader) (*Raster, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	ras := &Raster{Driver: AAIGrid{}.Name(), Transform: &Transform{CellSize: 1}}
	var first string
	for sc.Scan() {
		key := strings.ToLower(sc.Text())
		if !isHeaderKey(key) {
			first = sc.Text()
			break
		}
		if !sc.Scan() {
			return nil, fmt.Errorf("aaigrid: missing value for %s", key)
		}
		val := sc.Text()
		if err := applyHeader(ras, key, val); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("aaigrid: %w", err)
	}
	if ras.Width <= 0 || ras.Height <= 0 {
		return nil, fmt.Errorf("aaigrid: header must declare positive ncols and nrows")
	}

	if int64(ras.Width)*int64(ras.Height) > maxCells {
		return nil, fmt.Errorf("aaigrid: %dx%d grid exceeds %d cells", ras.Width, ras.Height, maxCells)
	}

	n := ras.Width * ras.Height
	ras.Cells = make([]int32, 0, min(n, 1<<16))
	tok := first
	for tok != "" {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("aaigrid: cell %d: %w", len(ras.Cells), err)
		}
		if len(ras.Cells) == n {
			return nil, fmt.Errorf("aaigrid: more than %d cell values", n)
		}
		ras.Cells = append(ras.Cells, int32(math.Round(f)))

		tok = ""
		if sc.Scan() {
			tok = sc.Text()
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("aaigrid: %w", err)
	}
	if len(ras.Cells) != n {
		return nil, fmt.Errorf("aaigrid: got %d cell values, want %d", len(ras.Cells), n)
	}
	return ras, nil
}

func isHeaderKey(key string) bool {
	switch key {
	case "ncols", "nrows", "xllcorner", "yllcorner", "xllcenter", "yllcenter", "cellsize", "nodata_value":
		return true
	}
	return false
}

func applyHeader(ras *Raster, key, val string) error {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fmt.Errorf("aaigrid: %s: %w", key, err)
	}
	switch key {
	case "ncols", "nrows":
		if f != math.Trunc(f) || f < 1 || f > math.MaxInt32 {
			return fmt.Errorf("aaigrid: %s %q is not a positive integer", key, val)
		}
		if key == "ncols" {
			ras.Width = int(f)
		} else {
			ras.Height = int(f)
		}
	case "xllcorner":
		ras.Transform.OriginX = f
	case "yllcorner":
		ras.Transform.OriginY = f
	case "xllcenter":
		ras.Transform.OriginX = f
		ras.Transform.Center = true
	case "yllcenter":
		ras.Transform.OriginY = f
		ras.Transform.Center = true
	case "cellsize":
		ras.Transform.CellSize = f
	case "nodata_value":
		ras.HasNoData = true
		ras.NoData = f
	}
	return nil
}

// Encode writes ras as an ASCII grid. A nil Transform places the grid at the
// origin with unit cells. Compression is ignored.
func (AAIGrid) Encode(w io.Writer, ras *Raster, _ WriteOptions) error {
	t := Transform{CellSize: 1}
	if ras.Transform != nil {
		t = *ras.Transform
	}
	xKey, yKey := "xllcorner", "yllcorner"
	if t.Center {
		xKey, yKey = "xllcenter", "yllcenter"
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "ncols %d\n", ras.Width)
	fmt.Fprintf(bw, "nrows %d\n", ras.Height)
	fmt.Fprintf(bw, "%s %s\n", xKey, formatFloat(t.OriginX))
	fmt.Fprintf(bw, "%s %s\n", yKey, formatFloat(t.OriginY))
	fmt.Fprintf(bw, "cellsize %s\n", formatFloat(t.CellSize))
	if ras.HasNoData {
		fmt.Fprintf(bw, "NODATA_value %s\n", formatFloat(ras.NoData))
	}

	for y := 0; y < ras.Height; y++ {
		row := ras.Cells[y*ras.Width : (y+1)*ras.Width]
		for x, v := range row {
			if x > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatInt(int64(v), 10))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

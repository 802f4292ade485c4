package raster

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/SpatialFocus/RasterCostDistance/pkg/errors"
)

// Driver encodes and decodes one raster file format.
type Driver interface {
	// Name returns the driver identifier (e.g., "GTiff").
	Name() string
	// Supports reports whether this driver handles the given filename.
	Supports(filename string) bool
	// Decode reads a raster from r.
	Decode(r io.Reader) (*Raster, error)
	// Encode writes ras to w.
	Encode(w io.Writer, ras *Raster, opts WriteOptions) error
}

// DefaultDrivers returns the built-in drivers.
func DefaultDrivers() []Driver {
	return []Driver{GTiff{}, AAIGrid{}}
}

// DetectDriver finds a driver that supports the given file path.
// Returns an UNSUPPORTED_FORMAT error if no driver matches.
func DetectDriver(path string, drivers ...Driver) (Driver, error) {
	if len(drivers) == 0 {
		drivers = DefaultDrivers()
	}
	name := filepath.Base(path)
	for _, d := range drivers {
		if d.Supports(name) {
			return d, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupportedFormat, "no raster driver for %q (supported: .tif, .tiff, .asc)", name)
}

// FindDriver returns the driver with the given name, or nil.
func FindDriver(name string, drivers ...Driver) Driver {
	if len(drivers) == 0 {
		drivers = DefaultDrivers()
	}
	for _, d := range drivers {
		if strings.EqualFold(d.Name(), name) {
			return d
		}
	}
	return nil
}

func hasExt(filename string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

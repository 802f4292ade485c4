package raster

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SpatialFocus/RasterCostDistance/pkg/errors"
	"github.com/SpatialFocus/RasterCostDistance/pkg/observability"
)

// Files is a [Source] and [Sink] backed by the local filesystem. The driver
// is chosen from the file extension.
type Files struct {
	drivers []Driver
}

// NewFiles creates a filesystem store. With no drivers, [DefaultDrivers] is
// used.
func NewFiles(drivers ...Driver) *Files {
	if len(drivers) == 0 {
		drivers = DefaultDrivers()
	}
	return &Files{drivers: drivers}
}

// Load reads the raster at path. A .prj next to the file, if present, fills
// the projection.
func (f *Files) Load(ctx context.Context, path string) (ras *Raster, err error) {
	start := time.Now()
	driver := ""
	defer func() {
		w, h := 0, 0
		if ras != nil {
			w, h = ras.Width, ras.Height
		}
		observability.Raster().OnLoad(ctx, driver, path, w, h, time.Since(start), err)
	}()

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeSourceNotFound, "input raster not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnreadable, err, "stat %s", path)
	}
	if info.IsDir() {
		return nil, errors.New(errors.ErrCodeSourceUnreadable, "input raster is a directory: %s", path)
	}

	d, err := DetectDriver(path, f.drivers...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnreadable, err, "open %s", path)
	}
	driver = d.Name()

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnreadable, err, "open %s", path)
	}
	defer file.Close()

	ras, err = d.Decode(bufio.NewReader(file))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceUnreadable, err, "read %s", path)
	}
	ras.Path = path
	if ras.Projection == "" {
		ras.Projection = readProjection(path)
	}
	return ras, nil
}

// Write encodes ras to path, replacing any existing file. The data is
// written to a temporary file in the same directory and renamed into place.
// Sidecars of ras.Path are copied next to path; otherwise a non-empty
// projection is written as a .prj.
func (f *Files) Write(ctx context.Context, path string, ras *Raster, opts WriteOptions) (err error) {
	start := time.Now()
	driver := ""
	var size int64
	defer func() {
		observability.Raster().OnWrite(ctx, driver, path, size, time.Since(start), err)
	}()

	if len(ras.Cells) != ras.Width*ras.Height {
		return errors.New(errors.ErrCodeSinkFailed, "raster has %d cells, want %dx%d", len(ras.Cells), ras.Width, ras.Height)
	}

	d, err := DetectDriver(path, f.drivers...)
	if err != nil {
		if d = FindDriver(ras.Driver, f.drivers...); d == nil {
			return errors.Wrap(errors.ErrCodeSinkFailed, err, "write %s", path)
		}
	}
	driver = d.Name()

	if err := writeAtomic(path, func(w *bufio.Writer) error {
		return d.Encode(w, ras, opts)
	}); err != nil {
		return errors.Wrap(errors.ErrCodeSinkFailed, err, "write %s", path)
	}
	if info, statErr := os.Stat(path); statErr == nil {
		size = info.Size()
	}

	if err := f.writeGeoreference(path, ras); err != nil {
		return errors.Wrap(errors.ErrCodeSinkFailed, err, "write georeference for %s", path)
	}
	return nil
}

func (f *Files) writeGeoreference(path string, ras *Raster) error {
	var copied []string
	if ras.Path != "" {
		var err error
		if copied, err = CopySidecars(ras.Path, path); err != nil {
			return err
		}
	}
	prj := strings.TrimSuffix(path, filepath.Ext(path)) + ".prj"
	if ras.Path != "" && samePath(strings.TrimSuffix(ras.Path, filepath.Ext(ras.Path))+".prj", prj) {
		// The source's own .prj, if any, already describes the output.
		if _, err := os.Stat(prj); err == nil {
			return nil
		}
	}
	for _, c := range copied {
		if c == prj {
			return nil
		}
	}
	if ras.Projection == "" {
		return nil
	}
	return os.WriteFile(prj, []byte(ras.Projection+"\n"), 0644)
}

func writeAtomic(path string, encode func(*bufio.Writer) error) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	bw := bufio.NewWriter(tmp)
	if err := encode(bw); err != nil {
		tmp.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

var (
	_ Source = (*Files)(nil)
	_ Sink   = (*Files)(nil)
)

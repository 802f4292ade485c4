package raster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// replacedSidecars share the raster's base name with a different extension.
var replacedSidecars = []string{".prj", ".tfw", ".tifw", ".wld"}

// appendedSidecars are named after the full raster filename.
var appendedSidecars = []string{".aux.xml"}

// CopySidecars copies georeference sidecar files found next to src so they
// sit next to dst under dst's name. It returns the paths written. A sidecar
// that src and dst share, as with seeds.asc and seeds.tif, is left alone and
// not reported.
func CopySidecars(src, dst string) ([]string, error) {
	srcBase := strings.TrimSuffix(src, filepath.Ext(src))
	dstBase := strings.TrimSuffix(dst, filepath.Ext(dst))

	var pairs [][2]string
	for _, ext := range replacedSidecars {
		pairs = append(pairs, [2]string{srcBase + ext, dstBase + ext})
	}
	for _, ext := range appendedSidecars {
		pairs = append(pairs, [2]string{src + ext, dst + ext})
	}

	var written []string
	for _, p := range pairs {
		if samePath(p[0], p[1]) {
			continue
		}
		ok, err := copyIfExists(p[0], p[1])
		if err != nil {
			return written, fmt.Errorf("copy sidecar %s: %w", filepath.Base(p[0]), err)
		}
		if ok {
			written = append(written, p[1])
		}
	}
	return written, nil
}

// readProjection returns the contents of the .prj next to path, or "".
func readProjection(path string) string {
	data, err := os.ReadFile(strings.TrimSuffix(path, filepath.Ext(path)) + ".prj")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}
	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)
	return errA == nil && errB == nil && os.SameFile(infoA, infoB)
}

// copyIfExists copies src over dst through a temporary file in dst's
// directory.
func copyIfExists(src, dst string) (bool, error) {
	in, err := os.Open(src)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer in.Close()

	err = writeAtomic(dst, func(w *bufio.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
	return err == nil, err
}

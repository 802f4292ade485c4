package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/SpatialFocus/RasterCostDistance/pkg/buildinfo"
	"github.com/SpatialFocus/RasterCostDistance/pkg/errors"
	"github.com/SpatialFocus/RasterCostDistance/pkg/raster"
)

const seedsASC = `ncols 3
nrows 3
xllcorner 0
yllcorner 0
cellsize 1
0 0 0
0 1 0
0 0 0
`

// execute runs the command tree with args and returns what it printed to
// stdout and to the log.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	old := stdout
	stdout = &out
	defer func() { stdout = old }()

	root := New(&logs, LogDebug).RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func writeSeeds(t *testing.T) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "seeds.asc")
	if err := os.WriteFile(path, []byte(seedsASC), 0644); err != nil {
		t.Fatal(err)
	}
	return dir, path
}

func loadCells(t *testing.T, path string) []int32 {
	t.Helper()
	ras, err := raster.NewFiles().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load %s: %v", path, err)
	}
	return ras.Cells
}

func TestRunCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir, in := writeSeeds(t)
	out := filepath.Join(dir, "distance.asc")

	stdoutText, logs, err := execute(t, "run", in, out, "--connectivity", "n4")
	if err != nil {
		t.Fatalf("run: %v\n%s", err, logs)
	}
	want := []int32{3, 2, 3, 2, 1, 2, 3, 2, 3}
	if got := loadCells(t, out); !reflect.DeepEqual(got, want) {
		t.Errorf("cells = %v, want %v", got, want)
	}
	for _, s := range []string{"Distance raster written", iconFresh, out, "rounds"} {
		if !strings.Contains(stdoutText, s) {
			t.Errorf("summary lacks %q:\n%s", s, stdoutText)
		}
	}
	if !strings.Contains(logs, "round complete") {
		t.Errorf("debug log lacks round diagnostics:\n%s", logs)
	}

	stdoutText, _, err = execute(t, "run", in, out, "--connectivity", "n4")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdoutText, iconCached) {
		t.Errorf("second run should be served from cache:\n%s", stdoutText)
	}

	stdoutText, _, err = execute(t, "run", in, out, "--connectivity", "n4", "--no-cache")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdoutText, iconFresh) {
		t.Errorf("--no-cache run should compute:\n%s", stdoutText)
	}
}

func TestRunCommandMissingInput(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	out := filepath.Join(dir, "distance.asc")

	stdoutText, logs, err := execute(t, "run", filepath.Join(dir, "absent.asc"), out)
	if err != nil {
		t.Fatalf("missing input must not fail the command: %v", err)
	}
	if !strings.Contains(logs, "cannot read input raster") {
		t.Errorf("log lacks diagnostic:\n%s", logs)
	}
	if !strings.Contains(stdoutText, "No output written") {
		t.Errorf("stdout lacks warning:\n%s", stdoutText)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output must not be created")
	}
}

func TestRunCommandConfigFile(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "line.asc"), []byte("ncols 5\nnrows 1\ncellsize 1\n1 0 0 0 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "job.toml")
	body := "input = \"line.asc\"\noutput = \"out.asc\"\nmax_distance = 9\nconnectivity = \"n8\"\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	// The flag overrides the file's cap.
	if _, logs, err := execute(t, "run", "--config", cfgPath, "--max-distance", "3"); err != nil {
		t.Fatalf("run: %v\n%s", err, logs)
	}
	want := []int32{1, 2, 3, 3, 3}
	if got := loadCells(t, filepath.Join(dir, "out.asc")); !reflect.DeepEqual(got, want) {
		t.Errorf("cells = %v, want %v", got, want)
	}
}

func TestRunCommandRejectsBadInput(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir, in := writeSeeds(t)

	_, _, err := execute(t, "run", in, filepath.Join(dir, "out.asc"), "--connectivity", "hex")
	if !errors.Is(err, errors.ErrCodeInvalidConnectivity) {
		t.Errorf("bad connectivity: err = %v", err)
	}

	_, _, err = execute(t, "run", in)
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("missing output: err = %v", err)
	}

	_, _, err = execute(t, "run", in, filepath.Join(dir, "out.asc"), "--max-distance", "-2")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("negative cap: err = %v", err)
	}

	_, _, err = execute(t, "run", in, in)
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("output equal to input: err = %v", err)
	}
}

func TestCacheCommands(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	out, _, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != filepath.Join(xdg, appName) {
		t.Errorf("cache path = %q", out)
	}

	out, _, err = execute(t, "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Cache is empty") {
		t.Errorf("clear on empty cache: %q", out)
	}

	dir, in := writeSeeds(t)
	if _, _, err := execute(t, "run", in, filepath.Join(dir, "out.asc")); err != nil {
		t.Fatal(err)
	}
	out, _, err = execute(t, "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Cleared 1 cached results") {
		t.Errorf("clear after run: %q", out)
	}
}

func TestVersionFlag(t *testing.T) {
	out, _, err := execute(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, buildinfo.Version) {
		t.Errorf("--version output %q lacks %q", out, buildinfo.Version)
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		out, _, err := execute(t, "completion", shell)
		if err != nil {
			t.Fatalf("%s: %v", shell, err)
		}
		if !strings.Contains(out, appName) {
			t.Errorf("%s completion does not mention %s", shell, appName)
		}
	}

	if _, _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("unknown shell should fail")
	}
}

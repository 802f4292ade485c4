// Package config loads and validates cost-distance run settings.
//
// Settings come from an optional TOML file:
//
//	input = "seeds.tif"
//	output = "distance.tif"
//	max_distance = 0        # 0 = unbounded
//	connectivity = "hybrid" # n4 | n8 | hybrid
//	workers = 0             # 0 = GOMAXPROCS
//	seed_value = 1
//	compression = "deflate" # none | deflate
//	cache = true
//	cache_url = ""          # redis://host:6379/0 shares results through Redis
//
// Keys missing from the file keep their [Defaults]. Relative input and output
// paths are resolved against the directory holding the file.
package config

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/SpatialFocus/RasterCostDistance/pkg/errors"
	"github.com/SpatialFocus/RasterCostDistance/pkg/raster"
	"github.com/SpatialFocus/RasterCostDistance/pkg/wavefront"
)

// Config holds the settings of one run.
type Config struct {
	Input        string `toml:"input"`
	Output       string `toml:"output"`
	MaxDistance  int32  `toml:"max_distance"`
	Connectivity string `toml:"connectivity"`
	Workers      int    `toml:"workers"`
	SeedValue    int32  `toml:"seed_value"`
	Compression  string `toml:"compression"`
	Cache        bool   `toml:"cache"`
	CacheURL     string `toml:"cache_url"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Config {
	return Config{
		Connectivity: wavefront.NameHybrid,
		SeedValue:    1,
		Compression:  raster.CompressionDeflate,
		Cache:        true,
	}
}

// Load reads the TOML file at path on top of [Defaults]. Unknown keys are
// rejected. The result is not validated.
func Load(path string) (Config, error) {
	cfg := Defaults()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	dir := filepath.Dir(path)
	cfg.Input = resolve(dir, cfg.Input)
	cfg.Output = resolve(dir, cfg.Output)
	return cfg, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Validate checks every field and returns the first problem as a coded
// error.
func (c Config) Validate() error {
	if err := errors.ValidatePath("input", c.Input); err != nil {
		return err
	}
	if err := errors.ValidatePath("output", c.Output); err != nil {
		return err
	}
	if err := errors.ValidateDistinctPaths(c.Input, c.Output); err != nil {
		return err
	}
	if c.MaxDistance < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_distance must be >= 0, got %d", c.MaxDistance)
	}
	if c.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must be >= 0, got %d", c.Workers)
	}
	if c.SeedValue == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "seed_value must not be 0")
	}
	if _, err := c.Strategy(); err != nil {
		return err
	}
	switch c.Compression {
	case "", raster.CompressionNone, raster.CompressionDeflate:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "compression must be %q or %q, got %q",
			raster.CompressionNone, raster.CompressionDeflate, c.Compression)
	}
	return nil
}

// Strategy resolves Connectivity.
func (c Config) Strategy() (wavefront.Strategy, error) {
	s, err := wavefront.ParseStrategy(c.Connectivity)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConnectivity, err,
			"connectivity must be one of %s", strings.Join(wavefront.StrategyNames(), ", "))
	}
	return s, nil
}

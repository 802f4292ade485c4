package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SpatialFocus/RasterCostDistance/pkg/config"
	"github.com/SpatialFocus/RasterCostDistance/pkg/errors"
	"github.com/SpatialFocus/RasterCostDistance/pkg/pipeline"
	"github.com/SpatialFocus/RasterCostDistance/pkg/wavefront"
)

// runOpts holds the command-line flags of the run command.
type runOpts struct {
	configPath   string // optional TOML run file
	maxDistance  int32  // distance cap, 0 = unbounded
	connectivity string // n4, n8 or hybrid
	workers      int    // engine goroutines, 0 = GOMAXPROCS
	seedValue    int32  // input value marking seeds
	compression  string // none or deflate
	noCache      bool   // skip the result cache entirely
	refresh      bool   // recompute and overwrite the cached result
	cacheURL     string // redis:// url of a shared cache
}

// runCommand creates the run command.
func (c *CLI) runCommand() *cobra.Command {
	def := config.Defaults()
	opts := runOpts{
		connectivity: def.Connectivity,
		seedValue:    def.SeedValue,
		compression:  def.Compression,
	}

	cmd := &cobra.Command{
		Use:   "run [input] [output]",
		Short: "Compute a distance raster from a seed raster",
		Long: `Compute a distance raster from a seed raster.

Seed cells (value 1, or --seed-value) get distance 1. Every other cell gets
the number of steps to its nearest seed plus one. With --max-distance, cells
farther away than the cap, including unreachable ones, get the cap. Without a
cap, unreachable cells stay 0.

Input and output may also come from a --config TOML file; positional
arguments and flags override it. If the input cannot be read the problem is
logged and no output is written.`,
		Example: `  costdistance run seeds.tif distance.tif
  costdistance run seeds.asc distance.asc --connectivity n8 --max-distance 50
  costdistance run --config job.toml --workers 8`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, args, &opts)
			if err != nil {
				return err
			}
			return c.run(cmd.Context(), cfg, opts.refresh)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML run file")
	cmd.Flags().Int32VarP(&opts.maxDistance, "max-distance", "m", 0, "distance cap (0 = unbounded)")
	cmd.Flags().StringVarP(&opts.connectivity, "connectivity", "n", opts.connectivity, "neighbourhood: n4, n8, hybrid")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "worker goroutines (0 = number of CPUs)")
	cmd.Flags().Int32Var(&opts.seedValue, "seed-value", opts.seedValue, "input value marking seed cells")
	cmd.Flags().StringVar(&opts.compression, "compression", opts.compression, "GeoTIFF compression: none, deflate")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached result exists")
	cmd.Flags().StringVar(&opts.cacheURL, "cache-url", "", "shared cache url (redis://host:6379/0)")

	_ = cmd.RegisterFlagCompletionFunc("connectivity", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return wavefront.StrategyNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("compression", cobra.FixedCompletions(
		[]string{"none", "deflate"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.MarkFlagFilename("config", "toml")

	return cmd
}

// resolveConfig layers defaults, the run file, positional arguments and
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, args []string, opts *runOpts) (config.Config, error) {
	cfg := config.Defaults()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if len(args) > 1 {
		cfg.Output = args[1]
	}

	flags := cmd.Flags()
	if flags.Changed("max-distance") {
		cfg.MaxDistance = opts.maxDistance
	}
	if flags.Changed("connectivity") {
		cfg.Connectivity = opts.connectivity
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("seed-value") {
		cfg.SeedValue = opts.seedValue
	}
	if flags.Changed("compression") {
		cfg.Compression = opts.compression
	}
	if flags.Changed("cache-url") {
		cfg.CacheURL = opts.cacheURL
	}
	if opts.noCache {
		cfg.Cache = false
	}

	if cfg.Input == "" || cfg.Output == "" {
		return cfg, errors.New(errors.ErrCodeInvalidPath, "input and output are required (arguments or --config)")
	}
	return cfg, cfg.Validate()
}

// run executes one job and prints its summary. An unreadable input is
// reported but is not a command failure.
func (c *CLI) run(ctx context.Context, cfg config.Config, refresh bool) error {
	logger := loggerFromContext(ctx)

	runner, rc, err := c.newRunner(ctx, cfg.Cache, cfg.CacheURL)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer rc.Close()

	opts := pipeline.FromConfig(cfg)
	opts.Refresh = refresh
	opts.Logger = logger

	prog := newProgress(logger)
	res, err := runner.Execute(ctx, opts)
	if errors.IsNoInput(err) {
		logger.Error("cannot read input raster", "path", cfg.Input, "code", errors.GetCode(err), "error", errors.UserMessage(err))
		printWarning("No output written")
		return nil
	}
	if err != nil {
		return err
	}
	prog.done("Distance raster complete")

	printRunSummary(res)
	return nil
}

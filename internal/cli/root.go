package cli

import (
	"github.com/spf13/cobra"

	"github.com/SpatialFocus/RasterCostDistance/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
// The CLI logger is attached to the command context before any subcommand
// runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Costdistance computes hop distances from seed cells of a raster",
		Long: `Costdistance reads a raster whose seed cells hold 1, propagates a wavefront
outwards with 4-, 8- or alternating connectivity and writes a raster of the
same shape holding each cell's hop distance from the nearest seed.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.runCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

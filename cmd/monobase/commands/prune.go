package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/monobase/internal/app"
	"go.trai.ch/monobase/internal/core/domain"
)

func (c *CLI) newPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove old generations, unused accelerator installs and package cache entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			opts := app.PruneOptions{}
			opts.Prefix, _ = f.GetString("prefix")
			opts.FloorID, _ = f.GetInt("min-gen-id")
			opts.OldGenerations = f.Changed("min-gen-id")
			opts.Accelerators, _ = f.GetBool("accel")
			opts.Cache, _ = f.GetBool("cache")
			return c.app.Prune(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.String("prefix", domain.DefaultPrefix, "Install prefix")
	f.Int("min-gen-id", 0, "Remove generations below this id")
	f.Bool("accel", false, "Remove accelerator installs no generation links to")
	f.Bool("cache", false, "Remove unused package cache entries")
	return cmd
}

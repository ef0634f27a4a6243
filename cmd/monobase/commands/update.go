package commands

import (
	"math"
	"runtime"

	"github.com/spf13/cobra"
	"go.trai.ch/monobase/internal/app"
	"go.trai.ch/monobase/internal/core/domain"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Resolve every venv of the generations into lock files next to the generation files",
		Long: `Resolve every venv of the selected generations against the live package indexes and
write one lock file per venv under <config>/requirements/<env>/<id>/. Builds install
from these locks only, so two builds of the same generation install the same packages.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configDir, env, err := generationFlags(cmd)
			if err != nil {
				return err
			}
			f := cmd.Flags()

			opts := app.UpdateOptions{
				ConfigDir:   configDir,
				Environment: env,
			}
			opts.Prefix, _ = f.GetString("prefix")
			opts.MinGenID, _ = f.GetInt("min-gen-id")
			opts.MaxGenID, _ = f.GetInt("max-gen-id")
			opts.Parallelism, _ = f.GetInt("parallelism")
			opts.FrameworkIndexURL, _ = f.GetString("framework-index-url")

			return c.app.Update(cmd.Context(), opts)
		},
	}

	addGenerationFlags(cmd)
	f := cmd.Flags()
	f.String("prefix", domain.DefaultPrefix, "Prefix holding the interpreters and package cache used while resolving")
	f.Int("min-gen-id", 0, "Minimum generation id")
	f.Int("max-gen-id", math.MaxInt, "Maximum generation id, default: no limit")
	f.Int("parallelism", runtime.NumCPU(), "Concurrent venv resolutions")
	f.String("framework-index-url", "", "Framework wheel index, default: the upstream index")
	return cmd
}

package commands

import (
	"math"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.trai.ch/monobase/internal/app"
	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/engine/userlayer"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build generations and publish the newest as latest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configDir, env, err := generationFlags(cmd)
			if err != nil {
				return err
			}
			f := cmd.Flags()

			opts := app.BuildOptions{
				ConfigDir:   configDir,
				Environment: env,
			}
			opts.Prefix, _ = f.GetString("prefix")
			opts.CacheDir, _ = f.GetString("cache")
			opts.MinGenID, _ = f.GetInt("min-gen-id")
			opts.MaxGenID, _ = f.GetInt("max-gen-id")
			opts.Mini, _ = f.GetBool("mini")
			opts.Selection.Python, _ = f.GetString("python")
			opts.Selection.Framework, _ = f.GetString("framework")
			opts.Selection.Toolkit, _ = f.GetString("accel")
			opts.Selection.RuntimeLib, _ = f.GetString("runtime-lib")
			opts.Parallelism, _ = f.GetInt("parallelism")
			opts.SkipAccelerators, _ = f.GetBool("skip-accel")
			opts.FrameworkIndexURL, _ = f.GetString("framework-index-url")
			opts.CleanCache, _ = f.GetBool("clean-cache")
			opts.PruneOldGenerations, _ = f.GetBool("prune-old-gen")
			opts.PruneAccelerators, _ = f.GetBool("prune-accel")
			opts.PruneCache, _ = f.GetBool("prune-cache")
			opts.Requirements, _ = f.GetString("requirements")
			opts.UserDir, _ = f.GetString("user-dir")
			opts.MetricsFile, _ = f.GetString("metrics-file")
			opts.AllDoneDir, _ = f.GetString("all-done-dir")
			if write, _ := f.GetBool("write-node-feature-labels"); write {
				opts.NodeFeatureLabelFile, _ = f.GetString("node-feature-label-file")
			}

			return c.app.Build(cmd.Context(), opts)
		},
	}

	addGenerationFlags(cmd)
	f := cmd.Flags()
	f.String("prefix", domain.DefaultPrefix, "Install prefix")
	f.String("cache", domain.DefaultCacheDir, "Download cache")
	f.Int("min-gen-id", 0, "Minimum generation id")
	f.Int("max-gen-id", math.MaxInt, "Maximum generation id, default: no limit")
	f.Bool("mini", false, "Build one venv of the newest generation, selected by --python, --framework, --accel and --runtime-lib")
	f.String("python", "", "Python major.minor of a mini build")
	f.String("framework", "", "Framework version of a mini build")
	f.String("accel", "", "Accelerator toolkit label of a mini build, default: cpu only")
	f.String("runtime-lib", "", "Runtime library label of a mini build")
	f.Int("parallelism", runtime.NumCPU(), "Concurrent venv and accelerator installs")
	f.Bool("skip-accel", false, "Skip accelerator toolkit and runtime library downloads")
	f.String("framework-index-url", "", "Framework wheel index, default: the upstream index")
	f.Bool("clean-cache", false, "Remove every package cache entry before building")
	f.Bool("prune-old-gen", false, "Remove generations below --min-gen-id")
	f.Bool("prune-accel", false, "Remove accelerator installs no generation links to")
	f.Bool("prune-cache", true, "Remove unused package cache entries")
	f.String("requirements", "", "User requirements.txt layered on the mini build")
	f.String("user-dir", userlayer.DefaultDir, "User venv directory")
	f.String("metrics-file", "", "Write build metrics to this node exporter textfile")
	f.String("all-done-dir", domain.DefaultPrefix, "Directory marked complete when the whole build finishes")
	f.Bool("write-node-feature-labels", os.Getenv("KUBERNETES_SERVICE_HOST") != "",
		"Write a done label for node feature discovery, default: true inside Kubernetes")
	f.String("node-feature-label-file", domain.DefaultNodeFeatureLabelFile, "Node feature discovery label file")

	return cmd
}

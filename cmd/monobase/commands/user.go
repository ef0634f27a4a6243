package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/monobase/internal/app"
	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/monobase/internal/engine/userlayer"
)

func (c *CLI) newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Build a user venv on top of the published monobase venv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			opts := app.UserOptions{}
			opts.Prefix, _ = f.GetString("prefix")
			opts.Dir, _ = f.GetString("dir")
			opts.Requirements, _ = f.GetString("requirements")
			opts.Python, _ = f.GetString("python")
			opts.Framework, _ = f.GetString("framework")
			opts.Accelerator, _ = f.GetString("accel")
			opts.FrameworkIndexURL, _ = f.GetString("framework-index-url")
			return c.app.BuildUser(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.String("prefix", domain.DefaultPrefix, "Install prefix")
	f.String("dir", userlayer.DefaultDir, "User venv directory")
	f.String("requirements", "", "User requirements.txt")
	f.String("python", "", "Python major.minor of the monobase venv")
	f.String("framework", "", "Framework version of the monobase venv")
	f.String("accel", domain.CPU, "Accelerator toolkit label of the monobase venv")
	f.String("framework-index-url", "", "Framework wheel index, default: the upstream index")
	_ = cmd.MarkFlagRequired("requirements")
	_ = cmd.MarkFlagRequired("python")
	return cmd
}

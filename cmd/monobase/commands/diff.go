package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/monobase/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff ID0 ID1",
		Short: "Compare the locked packages of two generations",
		Long: `Print the venvs only ID0 locks as "- venv", those only ID1 locks as "+ venv",
then one "venv<TAB>package<TAB>old<TAB>new" line per package whose pin changed.
A package missing on one side is shown as "-".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, env, err := generationFlags(cmd)
			if err != nil {
				return err
			}
			ids := make([]int, len(args))
			for i, a := range args {
				id, err := strconv.Atoi(a)
				if err != nil || id < 0 {
					return zerr.With(zerr.Wrap(domain.ErrInvalidGenerationID, strconv.Quote(a)), "id", a)
				}
				ids[i] = id
			}

			d, err := c.app.Diff(configDir, env, ids[0], ids[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, line := range d.Lines() {
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	addGenerationFlags(cmd)
	return cmd
}

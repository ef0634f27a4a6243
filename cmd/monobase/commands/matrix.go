package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the version matrix of the newest generation as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configDir, env, err := generationFlags(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if pythons, _ := cmd.Flags().GetBool("python-versions"); pythons {
				versions, err := c.app.PythonVersions(configDir, env)
				if err != nil {
					return err
				}
				for _, v := range versions {
					_, _ = fmt.Fprintln(out, v)
				}
				return nil
			}

			m, err := c.app.Matrix(configDir, env)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		},
	}

	addGenerationFlags(cmd)
	cmd.Flags().Bool("python-versions", false, "Print every python version of the environment, one per line")
	return cmd
}

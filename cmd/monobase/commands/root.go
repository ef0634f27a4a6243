// Package commands implements the CLI commands for monobase.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/monobase/internal/app"
	"go.trai.ch/monobase/internal/build"
	"go.trai.ch/monobase/internal/core/domain"
)

// CLI represents the command line interface for monobase.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	jsonLog func(bool)
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	Validate(configDir string) error
	Prune(ctx context.Context, opts app.PruneOptions) error
	Matrix(configDir string, env domain.Environment) (app.Matrix, error)
	PythonVersions(configDir string, env domain.Environment) ([]string, error)
	BuildUser(ctx context.Context, opts app.UserOptions) error
	Update(ctx context.Context, opts app.UpdateOptions) error
	Diff(configDir string, env domain.Environment, id0, id1 int) (domain.LockDiff, error)
}

// Option configures the CLI.
type Option func(*CLI)

// WithJSONLogs registers the switch called by --log-json.
func WithJSONLogs(fn func(bool)) Option {
	return func(c *CLI) {
		c.jsonLog = fn
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "monobase",
		Short:         "Build layered ML runtime environments, one generation at a time",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("log-json", false, "Log as JSON lines")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if jsonLog, _ := cmd.Flags().GetBool("log-json"); jsonLog && c.jsonLog != nil {
			c.jsonLog(true)
		}
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newValidateCmd())
	rootCmd.AddCommand(c.newPruneCmd())
	rootCmd.AddCommand(c.newMatrixCmd())
	rootCmd.AddCommand(c.newUserCmd())
	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newDiffCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// addGenerationFlags registers the flags shared by every command that reads generations.
func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Directory of <env>.yaml generation files, default: built-in")
	cmd.Flags().String("environment", string(domain.EnvProd), "Environment [test, prod]")
}

func generationFlags(cmd *cobra.Command) (string, domain.Environment, error) {
	configDir, _ := cmd.Flags().GetString("config")
	envFlag, _ := cmd.Flags().GetString("environment")
	env, err := domain.ParseEnvironment(envFlag)
	return configDir, env, err
}

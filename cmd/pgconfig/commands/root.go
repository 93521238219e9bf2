// Package commands implements the CLI commands for pgconfig.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/Guardsquare/proguard-sub005/internal/app"
	"github.com/Guardsquare/proguard-sub005/internal/build"
	"github.com/Guardsquare/proguard-sub005/internal/core/domain"
	"github.com/spf13/cobra"
)

// DefaultConfigPath is the task document read when --config is not given.
const DefaultConfigPath = domain.TaskFileName

// CLI represents the command line interface for pgconfig.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath     string
	followIncludes bool
	jsonLog        bool
	timings        bool
}

// Application represents the application logic interface.
type Application interface {
	Configure(s app.Settings)
	Show(ctx context.Context, src app.Source) error
	Inputs(ctx context.Context, src app.Source, opts app.InputsOptions) error
	Outputs(ctx context.Context, src app.Source) error
	Fingerprint(ctx context.Context, src app.Source, opts app.FingerprintOptions) error
	Watch(ctx context.Context, src app.Source, opts app.FingerprintOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "pgconfig",
		Short:         "Inspect declarative shrinker and obfuscator task configurations",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(*cobra.Command, []string) {
			c.app.Configure(app.Settings{
				JSONLog: c.jsonLog,
				Timings: c.timings,
			})
		},
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

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", DefaultConfigPath, "Task document to load")
	flags.BoolVar(&c.followIncludes, "follow-includes", false,
		"Load configuration entries that reference YAML documents into the same configuration")
	flags.BoolVar(&c.jsonLog, "json-log", false, "Write log output as JSON")
	flags.BoolVar(&c.timings, "timings", false, "Report how long each step took")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newInputsCmd())
	rootCmd.AddCommand(c.newOutputsCmd())
	rootCmd.AddCommand(c.newFingerprintCmd())
	rootCmd.AddCommand(c.newWatchCmd())
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

func (c *CLI) source() app.Source {
	return app.Source{
		Path:           c.configPath,
		FollowIncludes: c.followIncludes,
	}
}

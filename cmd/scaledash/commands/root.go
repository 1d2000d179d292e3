// Package commands implements the CLI commands for scaledash.
package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/scaledash/internal/app"
	"go.trai.ch/scaledash/internal/build"
	"go.trai.ch/scaledash/internal/core/domain"
)

// CLI represents the command line interface for scaledash.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	jsonLogs func(bool)
}

// Application represents the application logic interface.
type Application interface {
	Info(ctx context.Context) (domain.Payload, error)
	HistoryPage(ctx context.Context, from, to time.Time, pageSize, page int) (app.HistoryPage, error)
	Apply(ctx context.Context, doc domain.DefinitionDocument) (app.ApplyResult, error)
	Overview(ctx context.Context, window time.Duration) (app.Overview, error)
	Pages(pageSize, total, page int) domain.Pagination
}

// Option configures a CLI.
type Option func(*CLI)

// WithJSONLogs sets the callback run when --json-logs is passed.
func WithJSONLogs(fn func(bool)) Option {
	return func(c *CLI) { c.jsonLogs = fn }
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "scaledash",
		Short:         "Inspect autoscaling history and submit scaling definitions",
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

	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.jsonLogs == nil || !cmd.Flags().Changed("json-logs") {
			return
		}
		enabled, _ := cmd.Flags().GetBool("json-logs")
		c.jsonLogs(enabled)
	}

	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newHistoryCmd())
	rootCmd.AddCommand(c.newApplyCmd())
	rootCmd.AddCommand(c.newOverviewCmd())
	rootCmd.AddCommand(c.newPagesCmd())
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

// SetInput sets the input stream for the root command. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

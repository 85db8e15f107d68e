// Package cli implements the sieve command-line interface: fitting a model
// on CSV data, transforming and inverting new data, and predicting variables
// from labels alone.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// CLI encapsulates the command tree with its shared flags.
type CLI struct {
	version string
	verbose bool
	silent  bool
	config  string
	rootCmd *cobra.Command
}

// New creates a CLI instance for the given version string.
func New(version string) *CLI {
	c := &CLI{version: version}
	c.setupCommands()
	return c
}

// setupCommands wires the root command and its subcommands.
func (c *CLI) setupCommands() {
	c.rootCmd = &cobra.Command{
		Use:     "sieve",
		Short:   "Layered total-correlation decomposition of categorical data",
		Version: c.version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.initLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	c.rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug output (per-layer acceptance diagnostics)")
	c.rootCmd.PersistentFlags().BoolVarP(&c.silent, "silent", "s", false, "suppress all logging")
	c.rootCmd.PersistentFlags().StringVarP(&c.config, "config", "c", "", "YAML configuration file")

	c.rootCmd.AddCommand(c.newFitCommand())
	c.rootCmd.AddCommand(c.newTransformCommand())
	c.rootCmd.AddCommand(c.newPredictCommand())
}

// Run executes the CLI and returns any error.
func (c *CLI) Run() error {
	return c.rootCmd.Execute()
}

// initLogging configures the global zerolog logger from the shared flags.
func (c *CLI) initLogging() {
	level := zerolog.InfoLevel
	if c.verbose {
		level = zerolog.DebugLevel
	}
	if c.silent {
		level = zerolog.Disabled
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

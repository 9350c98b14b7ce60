// Package cmd wires the langfmt pipeline to a command-line front end: flag
// parsing via cobra/pflag, structured logging via logrus, and file access
// via afero, the same triad the rest of the retrieval pack (grafana/k6's
// cmd package) builds its CLI surface on. Library packages (token, ast,
// parser, printer) never import this package and never log; everything
// here either returns an error up to Execute or logs one and exits.
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// rootCommand bundles the state the root command and its subcommands share:
// a logger and the filesystem they read/write through. Keeping these on a
// struct instead of package-level globals (unlike the teacher pack's own
// CLI, which leans on globals) keeps Execute testable with an in-memory fs.
type rootCommand struct {
	fs     afero.Fs
	logger *logrus.Logger
	cmd    *cobra.Command
}

func newRootCommand(fs afero.Fs, logger *logrus.Logger) *rootCommand {
	c := &rootCommand{fs: fs, logger: logger}

	c.cmd = &cobra.Command{
		Use:           "langfmt <source-file>",
		Short:         "dump the lex/parse/format pipeline for a source file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.runDump,
	}

	var logFormat string

	c.cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log output format: text or json")
	c.cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		switch logFormat {
		case "json":
			c.logger.SetFormatter(&logrus.JSONFormatter{})
		case "text":
			c.logger.SetFormatter(&logrus.TextFormatter{})
		default:
			return fmt.Errorf("unsupported log-format %q", logFormat)
		}

		return nil
	}

	c.cmd.AddCommand(newFmtCommand(fs, logger))

	return c
}

// Execute runs the CLI against the real filesystem and os.Args, logging any
// failure and exiting non-zero. Library errors never reach the user
// directly; they are logged here and by the commands that hit them
// (§AMBIENT.2).
func Execute() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	c := newRootCommand(afero.NewOsFs(), logger)

	if err := c.cmd.Execute(); err != nil {
		logger.WithError(err).Error("langfmt failed")
		os.Exit(1)
	}
}

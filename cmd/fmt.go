package cmd

import (
	"bytes"
	"fmt"

	"github.com/golangee/langfmt"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// fmtCommand is the everyday entry point: format a file and either print,
// rewrite, or diff it, mirroring the gofmt -l/-w/-d convention (§AMBIENT.4).
type fmtCommand struct {
	fs     afero.Fs
	logger *logrus.Logger
	write  bool
	diff   bool
}

func newFmtCommand(fs afero.Fs, logger *logrus.Logger) *cobra.Command {
	fc := &fmtCommand{fs: fs, logger: logger}

	c := &cobra.Command{
		Use:           "fmt <source-file>",
		Short:         "format a source file to its canonical form",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          fc.run,
	}

	c.Flags().BoolVar(&fc.write, "write", false, "rewrite the file in place when its canonical form differs")
	c.Flags().BoolVar(&fc.diff, "diff", false, "print a unified diff against the canonical form instead of rewriting")

	return c
}

func (fc *fmtCommand) run(cmd *cobra.Command, args []string) error {
	path := args[0]

	src, err := afero.ReadFile(fc.fs, path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out, err := langfmt.Format(path, src)
	if err != nil {
		fc.logger.WithError(err).WithField("file", path).Error("format failed")
		return err
	}

	if bytes.Equal(src, out) {
		if !fc.write && !fc.diff {
			_, err := cmd.OutOrStdout().Write(out)
			return err
		}

		return nil
	}

	switch {
	case fc.diff:
		return fc.printDiff(cmd, path, src, out)
	case fc.write:
		return fc.rewrite(path, out)
	default:
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}
}

func (fc *fmtCommand) printDiff(cmd *cobra.Command, path string, src, out []byte) error {
	d := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(src)),
		B:        difflib.SplitLines(string(out)),
		FromFile: path,
		ToFile:   path + " (formatted)",
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(d)
	if err != nil {
		return fmt.Errorf("building diff for %s: %w", path, err)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), text)

	return err
}

func (fc *fmtCommand) rewrite(path string, out []byte) error {
	info, err := fc.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := afero.WriteFile(fc.fs, path, out, info.Mode()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fc.logger.WithField("file", path).Info("rewrote file")

	return nil
}

package cmd

import (
	"fmt"
	"io"

	"github.com/golangee/langfmt/ast"
	"github.com/golangee/langfmt/parser"
	"github.com/golangee/langfmt/printer"
	"github.com/golangee/langfmt/token"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// runDump implements the root command's four-section diagnostic dump: the
// raw input, every token the lexer produces, the parsed tree, and finally
// the canonical form, in that order, all written to standard error. Parse
// or print failures still dump whatever sections came before them before
// being returned, so a caller debugging a rejected file sees exactly how
// far the pipeline got.
func (c *rootCommand) runDump(cmd *cobra.Command, args []string) error {
	path := args[0]

	src, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out := cmd.ErrOrStderr()

	fmt.Fprintln(out, "====input:====")
	out.Write(src)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "====tokenization:====")
	dumpTokens(out, src)

	fmt.Fprintln(out, "====parse:====")

	p := parser.NewParser(path, src)

	root, err := p.Parse()
	if err != nil {
		c.logger.WithError(err).Error("parse failed")
		return err
	}

	defer p.Arena().Teardown(root)

	fmt.Fprint(out, ast.Dump(root))

	fmt.Fprintln(out, "====fmt:====")

	formatted, err := printer.Print(src, root)
	if err != nil {
		c.logger.WithError(err).Error("print failed")
		return err
	}

	out.Write(formatted)

	return nil
}

func dumpTokens(out io.Writer, src []byte) {
	lex := token.NewLexer(src)

	for {
		tok := lex.Next()
		fmt.Fprintf(out, "%s %q\n", tok.Kind, tok.Lexeme(src))

		if tok.Kind == token.EOF {
			return
		}
	}
}

// Package langfmt formats source text for the core covered by this module:
// lex, parse, print, teardown, in that order. Format is the single
// convenience entry point wiring the four packages together, mirroring how
// the teacher's root package exposes one call gluing its own lexer, parser
// and encoder together.
package langfmt

import (
	"github.com/golangee/langfmt/parser"
	"github.com/golangee/langfmt/printer"
)

// Format parses src and re-serializes it as canonical source text. file is
// used only to anchor diagnostics in any returned error. The AST built
// during parsing is torn down before Format returns, whether or not
// printing succeeds, so a caller never needs its own arena handle.
func Format(file string, src []byte) ([]byte, error) {
	p := parser.NewParser(file, src)

	root, err := p.Parse()
	if err != nil {
		return nil, err
	}

	defer p.Arena().Teardown(root)

	return printer.Print(src, root)
}

// MustFormat panics if Format fails. It exists for call sites (tests,
// CLI default flows) that have already established src is well-formed.
func MustFormat(file string, src []byte) []byte {
	out, err := Format(file, src)
	if err != nil {
		panic(err)
	}

	return out
}

package printer

import (
	"fmt"

	"github.com/golangee/langfmt/ast"
	"github.com/golangee/langfmt/token"
)

// renderState is one pending emission step. Like the parser's pstate, it is
// a closed family of named Go types playing the role of the tagged
// RenderState sum type §4.4 and §6.2 describe.
type renderState interface {
	run(p *Printer) error
}

// Printer walks an AST under an explicit LIFO work stack, emitting
// canonical source text to a Sink. It owns the current indentation as a
// scalar; nested blocks save and restore it via pushed Indent records
// rather than threading a parameter through every call (§4.4).
type Printer struct {
	src    []byte
	sink   Sink
	indent int
	work   []renderState
}

// Print renders root as canonical source text and returns the accumulated
// bytes. src must be the exact buffer root was parsed from: every token
// the printer emits is read back out of it rather than re-derived, which is
// what makes token offsets the single source of truth end to end.
func Print(src []byte, root *ast.Root) ([]byte, error) {
	sink := &bufSink{}

	p := &Printer{src: src, sink: sink}
	p.pushTopLevelDecls(root.Decls)

	if err := p.run(); err != nil {
		return nil, err
	}

	return sink.buf.Bytes(), nil
}

func (p *Printer) pushTopLevelDecls(decls []ast.Node) {
	for i := len(decls) - 1; i >= 0; i-- {
		p.push(text("\n"))
		p.push(renderTopLevelDecl{node: decls[i]})
	}
}

func (p *Printer) run() error {
	for len(p.work) > 0 {
		s := p.pop()
		if err := s.run(p); err != nil {
			return err
		}
	}

	return nil
}

func (p *Printer) push(s renderState) {
	p.work = append(p.work, s)
}

func (p *Printer) pop() renderState {
	n := len(p.work) - 1
	s := p.work[n]
	p.work = p.work[:n]

	return s
}

func (p *Printer) lexeme(tok token.Token) string {
	return tok.Lexeme(p.src)
}

// text is RenderState "Text(bytes)": literal emission, no AST involved.
type text string

func (t text) run(p *Printer) error {
	return p.sink.write([]byte(t))
}

// setIndent is RenderState "Indent(n)": mutate the printer's current
// indentation; produces no output by itself.
type setIndent int

func (n setIndent) run(p *Printer) error {
	p.indent = int(n)
	return nil
}

// printIndent is RenderState "PrintIndent": emit the current indent as
// that many literal spaces.
type printIndent struct{}

func (printIndent) run(p *Printer) error {
	return p.sink.writeByteNTimes(' ', p.indent)
}

func unsupportedNode(n ast.Node) error {
	return fmt.Errorf("printer: unsupported node kind %s", n.Kind())
}

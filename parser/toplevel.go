package parser

import (
	"github.com/golangee/langfmt/ast"
	"github.com/golangee/langfmt/token"
)

// stateTopLevel loops over top-level declarations until EOF, re-pushing
// itself after each one (§4.2) — the same self-re-push shape Block below
// uses for its statement list.
type stateTopLevel struct {
	root *ast.Root
}

func (s stateTopLevel) run(p *Parser) error {
	if tok := p.peek(); tok.Kind == token.EOF {
		return nil
	}

	p.push(s)
	p.push(stateTopLevelExtern{
		dest: func(n ast.Node) { s.root.Decls = append(s.root.Decls, n) },
	})

	return nil
}

// stateTopLevelExtern consumes the optional leading `pub`/`export`
// visibility keyword, then hands off to the extern/callconv dispatch.
// Visibility is modelled as its own state so VarDecl and FnProto, which
// both carry it, share exactly one place that recognises it.
type stateTopLevelExtern struct {
	dest Destination
}

func (s stateTopLevelExtern) run(p *Parser) error {
	var visib ast.OptToken

	if tok := p.peek(); tok.Kind == token.KeywordPub || tok.Kind == token.KeywordExport {
		p.next()
		visib = ast.Some(tok)
	}

	p.push(stateTopLevelDecl{dest: s.dest, visib: visib})

	return nil
}

// stateTopLevelDecl resolves the closed ordering this core requires —
// visibility already consumed, then an optional extern, then an optional
// calling convention, then the var/const/fn keyword that decides which node
// kind to allocate (Open Question i: a calling-convention keyword is only
// legal immediately before `fn`, and is rejected here otherwise rather than
// left for the printer to choke on).
type stateTopLevelDecl struct {
	dest  Destination
	visib ast.OptToken
}

func (s stateTopLevelDecl) run(p *Parser) error {
	var extern ast.OptToken

	if tok := p.peek(); tok.Kind == token.KeywordExtern {
		p.next()
		extern = ast.Some(tok)

		if lib := p.peek(); lib.Kind == token.StringLiteral {
			return p.unsupported(lib, "extern declarations naming a library are not implemented")
		}
	}

	var inline ast.OptToken

	if tok := p.peek(); tok.Kind == token.KeywordInline {
		p.next()
		inline = ast.Some(tok)
	}

	var callConv ast.OptToken

	if tok := p.peek(); isCallConv(tok.Kind) {
		p.next()
		callConv = ast.Some(tok)
	}

	tok := p.peek()

	switch tok.Kind {
	case token.KeywordVar, token.KeywordConst:
		if callConv.Present || inline.Present {
			return p.unexpected(tok, token.KeywordFn)
		}

		n := p.aren.NewVarDecl()
		n.Visib = s.visib
		n.Extern = extern
		s.dest(n)
		p.push(stateVarDecl{n: n})

		return nil
	case token.KeywordFn:
		n := p.aren.NewFnProto()
		n.Visib = s.visib
		n.Extern = extern
		n.Inline = inline
		n.CallConv = callConv
		s.dest(n)
		p.push(stateFnProto{n: n})

		return nil
	default:
		return p.unexpected(tok, token.KeywordVar, token.KeywordConst, token.KeywordFn)
	}
}

package parser

import (
	"github.com/golangee/langfmt/ast"
	"github.com/golangee/langfmt/token"
)

// stateFnProto consumes `fn`, the optional name, and the parenthesised
// parameter list, then defers to stateFnProtoAlign for everything after
// the closing paren (§3.3, §4.2).
type stateFnProto struct {
	n *ast.FnProto
}

func (s stateFnProto) run(p *Parser) error {
	fnTok, err := p.expect(token.KeywordFn)
	if err != nil {
		return err
	}

	s.n.Fn = fnTok

	if tok := p.peek(); tok.Kind == token.Identifier {
		p.next()
		s.n.Name = ast.Some(tok)
	}

	if _, err := p.expect(token.LParen); err != nil {
		return err
	}

	p.push(stateFnProtoAlign{n: s.n})
	p.push(stateParamDeclComma{n: s.n, first: true})

	return nil
}

// stateParamDeclComma decides, at the start of the list and after every
// comma, whether the parameter list closes here (`)`) or another
// ParamDecl follows. On the first entry no comma is required; on every
// subsequent entry a comma must already have been consumed by the previous
// round (§3.3: "comma-separated, terminated by `)`" — requiring the `)` to
// follow the last parameter immediately also gives variadic `...` for free,
// since nothing but `)` is accepted after it).
type stateParamDeclComma struct {
	n     *ast.FnProto
	first bool
}

func (s stateParamDeclComma) run(p *Parser) error {
	tok := p.peek()

	if tok.Kind == token.RParen {
		p.next()
		return nil
	}

	if !s.first {
		if last, ok := s.n.Params[len(s.n.Params)-1].(*ast.ParamDecl); ok && last.VarArgs.Present {
			return p.unexpected(tok, token.RParen)
		}

		if tok.Kind != token.Comma {
			return p.unexpected(tok, token.Comma, token.RParen)
		}

		p.next()
	}

	p.push(stateParamDeclComma{n: s.n, first: false})
	p.push(stateParamDecl{n: s.n})

	return nil
}

// stateParamDecl parses one parameter: optional comptime/noalias, an
// optional `name:` prefix disambiguated by a one-token lookahead past the
// identifier, and either `...` or a type expression.
type stateParamDecl struct {
	n *ast.FnProto
}

func (s stateParamDecl) run(p *Parser) error {
	pd := p.aren.NewParamDecl()
	s.n.Params = append(s.n.Params, pd)

	switch tok := p.peek(); tok.Kind {
	case token.KeywordComptime:
		p.next()
		pd.Comptime = ast.Some(tok)
	case token.KeywordNoalias:
		p.next()
		pd.NoAlias = ast.Some(tok)
	}

	if tok := p.peek(); tok.Kind == token.Identifier {
		p.next()

		if colon := p.peek(); colon.Kind == token.Colon {
			p.next()
			pd.Name = ast.Some(tok)
		} else {
			p.unget(tok)
		}
	}

	if tok := p.peek(); tok.Kind == token.Ellipsis3 {
		p.next()
		pd.VarArgs = ast.Some(tok)

		return nil
	}

	p.push(stateTypeExpr(func(node ast.Node) { pd.Type = node }))

	return nil
}

// stateFnProtoAlign recognises the optional `align(expr)` (same
// unimplemented-GroupedExpression caveat as VarDecl) and the optional
// `-> ReturnType` before handing off to stateFnDef.
type stateFnProtoAlign struct {
	n *ast.FnProto
}

func (s stateFnProtoAlign) run(p *Parser) error {
	tok := p.peek()
	if tok.Kind != token.KeywordAlign {
		return s.afterAlign(p)
	}

	p.next()

	if _, err := p.expect(token.LParen); err != nil {
		return err
	}

	n := s.n
	p.push(funcState(func(p *Parser) error { return stateFnProtoAlign{n: n}.afterAlign(p) }))
	p.push(stateGroupedExpression(func(node ast.Node) { n.Align = node }))

	return nil
}

func (s stateFnProtoAlign) afterAlign(p *Parser) error {
	if tok := p.peek(); tok.Kind == token.Arrow {
		p.next()
		p.push(stateFnDef{n: s.n})
		p.push(stateTypeExpr(func(node ast.Node) { s.n.ReturnType = node }))

		return nil
	}

	p.push(stateFnDef{n: s.n})

	return nil
}

// stateFnDef decides between a forward declaration (`;`) and a definition
// with a body (§3.3).
type stateFnDef struct {
	n *ast.FnProto
}

func (s stateFnDef) run(p *Parser) error {
	if tok := p.peek(); tok.Kind == token.Semicolon {
		p.next()
		return nil
	}

	block := p.aren.NewBlock()
	s.n.Body = block
	p.push(stateBlock{n: block})

	return nil
}

package parser

import (
	"github.com/golangee/langfmt/ast"
	"github.com/golangee/langfmt/token"
)

// stateBlock consumes the opening `{` on its first run and then loops,
// re-pushing itself with opened set, until it reads the closing `}`
// (§3.3, §4.2). The loop shape mirrors stateTopLevel.
type stateBlock struct {
	n      *ast.Block
	opened bool
}

func (s stateBlock) run(p *Parser) error {
	if !s.opened {
		lbrace, err := p.expect(token.LBrace)
		if err != nil {
			return err
		}

		s.n.LBrace = lbrace
		s.opened = true
	}

	if tok := p.peek(); tok.Kind == token.RBrace {
		p.next()
		s.n.RBrace = tok

		return nil
	}

	p.push(s)
	p.push(stateStatement{dest: func(node ast.Node) { s.n.Stmts = append(s.n.Stmts, node) }})

	return nil
}

// stateStatement recognises the only statement form this core supports: an
// optional `comptime` followed by a var/const declaration (§4.4: "currently
// only VarDecl is a valid statement"). Anything else is parsed as a bare
// expression statement terminated by `;`, so an identifier on its own still
// round-trips even though the grammar has nothing useful to do with it yet.
type stateStatement struct {
	dest Destination
}

func (s stateStatement) run(p *Parser) error {
	var comptime ast.OptToken

	tok := p.peek()
	if tok.Kind == token.KeywordComptime {
		p.next()
		comptime = ast.Some(tok)
		tok = p.peek()
	}

	if tok.Kind == token.KeywordVar || tok.Kind == token.KeywordConst {
		n := p.aren.NewVarDecl()
		n.Comptime = comptime
		s.dest(n)
		p.push(stateVarDecl{n: n})

		return nil
	}

	if comptime.Present {
		return p.unexpected(tok, token.KeywordVar, token.KeywordConst)
	}

	p.push(expectToken(token.Semicolon))
	p.push(stateExpression(s.dest))

	return nil
}

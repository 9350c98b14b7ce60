package parser

import (
	"github.com/golangee/langfmt/ast"
	"github.com/golangee/langfmt/token"
)

// stateTypeExpr parses a type expression. This core's Primary only accepts
// identifiers, so type and value expressions share the same descent chain;
// the one thing that differs is that `var` is reserved in type position
// rather than meaningful (§4.2).
func stateTypeExpr(dest Destination) pstate {
	return typeExpr{dest}
}

type typeExpr struct {
	dest Destination
}

func (s typeExpr) run(p *Parser) error {
	if tok := p.peek(); tok.Kind == token.KeywordVar {
		return p.unsupported(tok, "'var' is reserved in type position")
	}

	p.push(stateUnwrapExpression(s.dest))

	return nil
}

// stateGroupedExpression is declared for `(expr)` positions — align(expr)
// being the only one this core's grammar reaches — but deliberately has no
// implementation (Open Question iii): it always fails with
// UnsupportedConstructError rather than silently accepting or dropping the
// expression.
func stateGroupedExpression(dest Destination) pstate {
	return groupedExpr{dest}
}

type groupedExpr struct {
	dest Destination
}

func (g groupedExpr) run(p *Parser) error {
	tok := p.peek()
	return p.unsupported(tok, "parenthesised expressions (align(...)) are not implemented")
}

// statePrefixOpExpression recognises `&`, optionally followed by one
// `align(...)` (again routed through the unimplemented GroupedExpression) and
// then `const` and `volatile` modifiers in any order and quantity, before
// descending into its operand (§3.3, §4.2).
func statePrefixOpExpression(dest Destination) pstate {
	return prefixOpExpr{dest}
}

type prefixOpExpr struct {
	dest Destination
}

func (s prefixOpExpr) run(p *Parser) error {
	tok := p.peek()
	if tok.Kind != token.Ampersand {
		p.push(stateSuffixOpExpression(s.dest))
		return nil
	}

	amp := p.next()

	node := p.aren.NewAddrOfExpr()
	node.Amp = amp
	s.dest(node)

	if align := p.peek(); align.Kind == token.KeywordAlign {
		p.next()

		if _, err := p.expect(token.LParen); err != nil {
			return err
		}

		n := node
		p.push(funcState(func(p *Parser) error { return prefixOpModifiers(p, n) }))
		p.push(stateGroupedExpression(func(child ast.Node) { n.Align = child }))

		return nil
	}

	return prefixOpModifiers(p, node)
}

func prefixOpModifiers(p *Parser, node *ast.AddrOfExpr) error {
	for {
		tok := p.peek()

		switch tok.Kind {
		case token.KeywordConst:
			p.next()
			node.Const = ast.Some(tok)
		case token.KeywordVolatile:
			p.next()
			node.Volatile = ast.Some(tok)
		default:
			p.push(statePrefixOpExpression(func(child ast.Node) { node.Operand = child }))
			return nil
		}
	}
}

// statePrimaryExpression is the leaf of the descent: this core's grammar
// accepts only a bare identifier here (§4.2; literals, calls, and grouping
// are out of scope).
func statePrimaryExpression(dest Destination) pstate {
	return primaryExpr{dest}
}

type primaryExpr struct {
	dest Destination
}

func (s primaryExpr) run(p *Parser) error {
	tok := p.next()
	if tok.Kind != token.Identifier {
		return p.unexpected(tok, token.Identifier)
	}

	ident := p.aren.NewIdentifier()
	ident.Name = tok
	s.dest(ident)

	return nil
}

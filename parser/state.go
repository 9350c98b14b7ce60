package parser

import (
	"github.com/golangee/langfmt/ast"
	"github.com/golangee/langfmt/token"
)

// Destination is a handle into which a sub-rule stores the node it produces:
// a required field slot, an optional field slot, or an append-to-list
// target, all expressed as the same closure shape so the expression states
// below can be reused verbatim in every syntactic context (§4.2).
type Destination func(ast.Node)

// pstate is one grammar continuation. The parser's work stack holds pstate
// values; the main loop pops one, calls run, and run pushes whatever
// successor states the production requires. Because every grammar
// non-terminal below has its own named type or constructor (the
// pass-through expression layers share exprLayer), this interface plays the role
// of the tagged State sum type §6.2 and §9 call for — Go's dynamic dispatch
// stands in for the switch-on-tag a closed enum would need.
type pstate interface {
	run(p *Parser) error
}

// funcState adapts a plain continuation function to pstate, for the rare
// glue step that doesn't correspond to a named grammar state (§6.2) — e.g.
// "resume after an unimplemented GroupedExpression would have produced a
// value". Every named production still gets its own type or constructor.
type funcState func(p *Parser) error

func (f funcState) run(p *Parser) error { return f(p) }

// exprLayer implements every pass-through layer of the expression descent
// (§4.2): push the next, deeper layer with the same destination and return.
// Naming each layer as its own constructor (below) keeps every link in the
// chain individually addressable, so the grammar can be extended at any
// layer without restructuring its neighbours.
type exprLayer struct {
	dest Destination
	next func(Destination) pstate
}

func (s exprLayer) run(p *Parser) error {
	p.push(s.next(s.dest))
	return nil
}

func stateExpression(dest Destination) pstate          { return exprLayer{dest, stateUnwrapExpression} }
func stateUnwrapExpression(dest Destination) pstate     { return exprLayer{dest, stateBoolOrExpression} }
func stateBoolOrExpression(dest Destination) pstate     { return exprLayer{dest, stateBoolAndExpression} }
func stateBoolAndExpression(dest Destination) pstate    { return exprLayer{dest, stateComparisonExpression} }
func stateComparisonExpression(dest Destination) pstate { return exprLayer{dest, stateBinaryOrExpression} }
func stateBinaryOrExpression(dest Destination) pstate   { return exprLayer{dest, stateBinaryXorExpression} }
func stateBinaryXorExpression(dest Destination) pstate  { return exprLayer{dest, stateBinaryAndExpression} }
func stateBinaryAndExpression(dest Destination) pstate  { return exprLayer{dest, stateBitShiftExpression} }
func stateBitShiftExpression(dest Destination) pstate   { return exprLayer{dest, stateAdditionExpression} }
func stateAdditionExpression(dest Destination) pstate   { return exprLayer{dest, stateMultiplyExpression} }
func stateMultiplyExpression(dest Destination) pstate   { return exprLayer{dest, stateBraceSuffixExpression} }
func stateBraceSuffixExpression(dest Destination) pstate {
	return exprLayer{dest, statePrefixOpExpression}
}
func stateSuffixOpExpression(dest Destination) pstate { return exprLayer{dest, statePrimaryExpression} }

// stateExpectToken consumes exactly one token of the given kind or fails.
// It is the named continuation spec.md's state alphabet (§6.2) uses
// wherever a pushed sub-rule must be followed by a fixed terminator, e.g.
// the ';' after an expression statement.
type stateExpectToken struct {
	kind token.Kind
}

func expectToken(k token.Kind) pstate {
	return stateExpectToken{kind: k}
}

func (s stateExpectToken) run(p *Parser) error {
	_, err := p.expect(s.kind)
	return err
}

// Package parser turns a token stream into an AST using an explicit work
// stack instead of host recursion (§4.2, §6.2, §9): every grammar
// non-terminal is a named pstate value, pushed in the reverse of the order
// it must run in, since the stack hands back the most recently pushed state
// first.
package parser

import (
	"github.com/golangee/langfmt/ast"
	"github.com/golangee/langfmt/token"
)

// Parser holds the mutable state of one parse session: the lexer, its
// pushback buffer, the work stack, and the arena every produced node is
// allocated from.
type Parser struct {
	file string
	src  []byte
	lex  *token.Lexer
	pb   pushback
	aren *ast.Arena
	work []pstate
}

// NewParser returns a Parser ready to lex and parse src. file is used only
// to anchor diagnostics.
func NewParser(file string, src []byte) *Parser {
	return &Parser{
		file: file,
		src:  src,
		lex:  token.NewLexer(src),
		aren: ast.NewArena(),
	}
}

// Arena returns the allocator backing this parse. Callers that abandon a
// partially or fully parsed tree are responsible for calling
// Arena().Teardown on whatever they received, to uphold the single-owner
// contract of §3.5.
func (p *Parser) Arena() *ast.Arena { return p.aren }

// Parse runs the state machine to completion and returns the resulting
// Root, or the first syntax error encountered. On error, whatever partial
// tree had been built is torn down before returning, so a failed Parse
// leaves nothing live in the arena.
func (p *Parser) Parse() (*ast.Root, error) {
	root := p.aren.NewRoot()

	p.push(stateTopLevel{root: root})

	if err := p.run(); err != nil {
		p.aren.Teardown(root)
		return nil, err
	}

	return root, nil
}

func (p *Parser) run() error {
	for len(p.work) > 0 {
		s := p.pop()
		if err := s.run(p); err != nil {
			return err
		}
	}

	return nil
}

func (p *Parser) push(s pstate) {
	p.work = append(p.work, s)
}

func (p *Parser) pop() pstate {
	n := len(p.work) - 1
	s := p.work[n]
	p.work = p.work[:n]

	return s
}

// next returns the next token, either from the pushback buffer or the
// lexer. The lexer itself never fails (§4.1); a malformed token surfaces as
// token.Invalid and is diagnosed here, at the point a grammar rule demands
// something specific of it.
func (p *Parser) next() token.Token {
	if t, ok := p.pb.pop(); ok {
		return t
	}

	return p.lex.Next()
}

// peek returns the next token without consuming it.
func (p *Parser) peek() token.Token {
	t := p.next()
	p.unget(t)

	return t
}

// unget returns t to the stream ahead of the lexer. §8's P5 bounds the
// buffer this feeds at two simultaneously un-got tokens.
func (p *Parser) unget(t token.Token) {
	p.pb.push(t)
}

// expect consumes the next token if it is of kind k, or returns an
// UnexpectedTokenError anchored at the token actually found.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	tok := p.next()
	if tok.Kind != k {
		return tok, p.unexpected(tok, k)
	}

	return tok, nil
}

func isCallConv(k token.Kind) bool {
	return k == token.KeywordColdcc || k == token.KeywordNakedcc || k == token.KeywordStdcallcc
}

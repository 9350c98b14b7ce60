package parser

import (
	"fmt"
	"strings"

	"github.com/golangee/langfmt/token"
)

// UnexpectedTokenError is raised whenever the parser demands one of a fixed
// set of token kinds and the input offers something else (§4.2, §8).
type UnexpectedTokenError struct {
	*token.SyntaxError
	Found    token.Kind
	Expected []token.Kind
}

// UnsupportedConstructError is raised for grammar the core recognises but
// does not implement: extern library-name declarations, align(expr), and
// var in type position (§4.2 Open Questions, §9).
type UnsupportedConstructError struct {
	*token.SyntaxError
}

func (p *Parser) unexpected(tok token.Token, expected ...token.Kind) error {
	names := make([]string, len(expected))
	for i, k := range expected {
		names[i] = k.String()
	}

	msg := fmt.Sprintf("expected %s, found %s", strings.Join(names, " or "), tok.Kind.String())

	return &UnexpectedTokenError{
		SyntaxError: token.NewSyntaxError(p.file, p.src, tok, msg),
		Found:       tok.Kind,
		Expected:    expected,
	}
}

func (p *Parser) unsupported(tok token.Token, msg string) error {
	return &UnsupportedConstructError{
		SyntaxError: token.NewSyntaxError(p.file, p.src, tok, msg),
	}
}

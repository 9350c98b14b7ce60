package parser

import "github.com/golangee/langfmt/token"

// pushbackCap is the bound on simultaneously un-got tokens the grammar below
// actually needs: one token of lookahead almost everywhere, and at most two
// when a state has to un-read a token it speculatively consumed while
// disambiguating a named parameter from a bare type (§4.2, §8 P5).
const pushbackCap = 2

// pushback is a fixed-capacity LIFO of tokens returned to the stream ahead
// of the lexer. unget followed immediately by next must reproduce the
// original read order, so the most recently un-got token is the first one
// handed back out.
type pushback struct {
	buf [pushbackCap]token.Token
	n   int
}

func (b *pushback) push(t token.Token) {
	if b.n >= pushbackCap {
		panic("parser: pushback buffer overflow")
	}

	b.buf[b.n] = t
	b.n++
}

func (b *pushback) pop() (token.Token, bool) {
	if b.n == 0 {
		return token.Token{}, false
	}

	b.n--

	return b.buf[b.n], true
}

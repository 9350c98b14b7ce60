// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

// state is one of the Mealy-machine states of §4.1. The zero value is
// stateStart.
type state uint8

const (
	stateStart state = iota
	stateIdentifier
	stateBuiltin
	stateC
	stateStringLiteral
	stateStringLiteralBackslash
	stateMinus
	stateSlash
	stateLineComment
	stateZero
	stateNumberLiteral
	stateNumberDot
	stateFloatFraction
	stateFloatExponentUnsigned
	stateFloatExponentNumber
	stateAmpersand
	statePeriod
	statePeriod2
)

// Lexer is a deterministic finite-state scanner over a read-only byte slice.
// It is a pure function of its cursor position and performs no allocation.
type Lexer struct {
	src []byte
	pos int
}

// NewLexer returns a Lexer positioned at the start of src. src is never
// copied or mutated.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src}
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentChar(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// Next returns the next token starting at or after the cursor. Once the
// input is exhausted it keeps returning an eof token whose offsets equal
// len(src).
func (l *Lexer) Next() Token {
	var result Token

	st := stateStart
	result.Start = l.pos

	for {
		if l.pos >= len(l.src) {
			return l.finishAtEOF(st, &result)
		}

		c := l.src[l.pos]

		switch st {
		case stateStart:
			switch {
			case c == ' ' || c == '\n' || c == '\t' || c == '\r':
				l.pos++
				result.Start = l.pos
			case c == 'c':
				st = stateC
				l.pos++
			case isAlpha(c):
				st = stateIdentifier
				l.pos++
			case c == '@':
				st = stateBuiltin
				l.pos++
			case c == '"':
				st = stateStringLiteral
				l.pos++
			case c == '0':
				st = stateZero
				l.pos++
			case c >= '1' && c <= '9':
				st = stateNumberLiteral
				l.pos++
			case c == '-':
				st = stateMinus
				l.pos++
			case c == '/':
				st = stateSlash
				l.pos++
			case c == '&':
				st = stateAmpersand
				l.pos++
			case c == '.':
				st = statePeriod
				l.pos++
			case c == '=':
				l.pos++
				return l.finish(Equal, &result)
			case c == '(':
				l.pos++
				return l.finish(LParen, &result)
			case c == ')':
				l.pos++
				return l.finish(RParen, &result)
			case c == ';':
				l.pos++
				return l.finish(Semicolon, &result)
			case c == '%':
				l.pos++
				return l.finish(Percent, &result)
			case c == '{':
				l.pos++
				return l.finish(LBrace, &result)
			case c == '}':
				l.pos++
				return l.finish(RBrace, &result)
			case c == ':':
				l.pos++
				return l.finish(Colon, &result)
			case c == ',':
				l.pos++
				return l.finish(Comma, &result)
			default:
				l.pos++
				return l.finish(Invalid, &result)
			}

		case stateC:
			switch {
			case c == '"':
				st = stateStringLiteral
				result.StringKind = StringCPrefixed
				l.pos++
			case isIdentChar(c):
				st = stateIdentifier
				l.pos++
			default:
				return l.finishIdentifier(&result)
			}

		case stateIdentifier:
			if isIdentChar(c) {
				l.pos++
			} else {
				return l.finishIdentifier(&result)
			}

		case stateBuiltin:
			if isIdentChar(c) {
				l.pos++
			} else {
				return l.finish(Builtin, &result)
			}

		case stateStringLiteral:
			switch c {
			case '\\':
				st = stateStringLiteralBackslash
				l.pos++
			case '"':
				l.pos++
				return l.finish(StringLiteral, &result)
			case '\n':
				// LexTermination (§7): a bare newline ends the token early.
				// The lexer itself never fails; the invalid token is
				// diagnosed later by the parser at the point of use.
				return l.finish(Invalid, &result)
			default:
				l.pos++
			}

		case stateStringLiteralBackslash:
			// A backslash escape consumes the next byte unconditionally.
			l.pos++
			st = stateStringLiteral

		case stateMinus:
			if c == '>' {
				l.pos++
				return l.finish(Arrow, &result)
			}

			return l.finish(Minus, &result)

		case stateSlash:
			if c == '/' {
				st = stateLineComment
				l.pos++
			} else {
				return l.finish(Slash, &result)
			}

		case stateLineComment:
			if c == '\n' {
				// The comment is discarded; the scanner restarts at Start.
				l.pos++
				st = stateStart
				result.Start = l.pos
			} else {
				l.pos++
			}

		case stateAmpersand:
			if c == '=' {
				l.pos++
				return l.finish(AmpersandEqual, &result)
			}

			return l.finish(Ampersand, &result)

		case statePeriod:
			if c == '.' {
				st = statePeriod2
				l.pos++
			} else {
				return l.finish(Period, &result)
			}

		case statePeriod2:
			if c == '.' {
				l.pos++
				return l.finish(Ellipsis3, &result)
			}

			return l.finish(Ellipsis2, &result)

		case stateZero:
			switch c {
			case 'b', 'o', 'x':
				st = stateNumberLiteral
				l.pos++
			case '.':
				st = stateNumberDot
				l.pos++
			case 'e', 'E', 'p', 'P':
				st = stateFloatExponentUnsigned
				l.pos++
			case '_':
				st = stateNumberLiteral
				l.pos++
			default:
				if isHex(c) {
					st = stateNumberLiteral
					l.pos++
				} else {
					return l.finish(NumberLiteral, &result)
				}
			}

		case stateNumberLiteral:
			switch {
			case c == '.':
				st = stateNumberDot
				l.pos++
			case c == 'e' || c == 'E' || c == 'p' || c == 'P':
				st = stateFloatExponentUnsigned
				l.pos++
			case isHex(c) || c == '_':
				l.pos++
			default:
				return l.finish(NumberLiteral, &result)
			}

		case stateNumberDot:
			if c == '.' {
				// The first '.' is pushed back; the number ends before it.
				// This supports ranges like a[0..10].
				l.pos--
				return l.finish(NumberLiteral, &result)
			}

			st = stateFloatFraction

		case stateFloatFraction:
			switch {
			case c == 'e' || c == 'E' || c == 'p' || c == 'P':
				st = stateFloatExponentUnsigned
				l.pos++
			case isHex(c) || c == '_':
				l.pos++
			default:
				return l.finish(NumberLiteral, &result)
			}

		case stateFloatExponentUnsigned:
			switch {
			case c == '+' || c == '-':
				st = stateFloatExponentNumber
				l.pos++
			case isDigit(c):
				st = stateFloatExponentNumber
				l.pos++
			default:
				return l.finish(Invalid, &result)
			}

		case stateFloatExponentNumber:
			if isDigit(c) || c == '_' {
				l.pos++
			} else {
				return l.finish(NumberLiteral, &result)
			}
		}
	}
}

// finish closes off result with kind at the current cursor and returns it.
func (l *Lexer) finish(kind Kind, result *Token) Token {
	result.Kind = kind
	result.End = l.pos

	return *result
}

// finishIdentifier closes off an identifier-shaped lexeme, rewriting its kind
// to the matching keyword tag if the lexeme hits the reserved-word table.
func (l *Lexer) finishIdentifier(result *Token) Token {
	result.End = l.pos

	if kw, ok := LookupKeyword(string(l.src[result.Start:result.End])); ok {
		result.Kind = kw
	} else {
		result.Kind = Identifier
	}

	return *result
}

// finishAtEOF handles end-of-input while inside a partially lexed token.
// States that represent a complete token at EOF close it off as such;
// states mid-way through punctuation that has no shorter valid form close
// off the token started so far; EOF at Start yields the eof token.
func (l *Lexer) finishAtEOF(st state, result *Token) Token {
	switch st {
	case stateStart:
		result.Kind = EOF
		result.Start = len(l.src)
		result.End = len(l.src)

		return *result
	case stateC, stateIdentifier:
		return l.finishIdentifier(result)
	case stateBuiltin:
		return l.finish(Builtin, result)
	case stateMinus:
		return l.finish(Minus, result)
	case stateSlash:
		return l.finish(Slash, result)
	case stateAmpersand:
		return l.finish(Ampersand, result)
	case statePeriod:
		return l.finish(Period, result)
	case statePeriod2:
		return l.finish(Ellipsis2, result)
	case stateZero, stateNumberLiteral, stateFloatFraction, stateFloatExponentNumber:
		return l.finish(NumberLiteral, result)
	case stateNumberDot:
		return l.finish(NumberLiteral, result)
	case stateLineComment:
		// A comment that runs to EOF without a trailing newline is simply
		// discarded; there is no more input, so we land on eof directly.
		result.Kind = EOF
		result.Start = len(l.src)
		result.End = len(l.src)

		return *result
	case stateStringLiteral, stateStringLiteralBackslash, stateFloatExponentUnsigned:
		// Unterminated string or a dangling exponent sign: surfaces as
		// invalid per the LexTermination error kind (§7).
		return l.finish(Invalid, result)
	default:
		return l.finish(Invalid, result)
	}
}

// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

// Kind identifies the lexical class of a Token. The set is closed: every
// value a Lexer can produce is listed here, there is no open extension point.
type Kind uint8

const (
	Invalid Kind = iota
	Identifier
	StringLiteral
	NumberLiteral
	EOF
	Builtin

	Equal
	LParen
	RParen
	Semicolon
	Percent
	LBrace
	RBrace
	Period
	Ellipsis2
	Ellipsis3
	Minus
	Arrow
	Colon
	Slash
	Comma
	Ampersand
	AmpersandEqual

	keywordsStart
	KeywordAlign
	KeywordAnd
	KeywordAsm
	KeywordBreak
	KeywordColdcc
	KeywordComptime
	KeywordConst
	KeywordContinue
	KeywordDefer
	KeywordElse
	KeywordEnum
	KeywordError
	KeywordExport
	KeywordExtern
	KeywordFalse
	KeywordFn
	KeywordFor
	KeywordGoto
	KeywordIf
	KeywordInline
	KeywordNakedcc
	KeywordNoalias
	KeywordNull
	KeywordOr
	KeywordPacked
	KeywordPub
	KeywordReturn
	KeywordStdcallcc
	KeywordStruct
	KeywordSwitch
	KeywordTest
	KeywordThis
	KeywordTrue
	KeywordUndefined
	KeywordUnion
	KeywordUnreachable
	KeywordUse
	KeywordVar
	KeywordVolatile
	KeywordWhile
	keywordsEnd
)

// StringKind distinguishes the sub-kinds a StringLiteral token may carry.
type StringKind uint8

const (
	StringNormal StringKind = iota
	StringCPrefixed
)

//nolint:gochecknoglobals
var kindNames = map[Kind]string{
	Invalid:        "invalid",
	Identifier:     "identifier",
	StringLiteral:  "string-literal",
	NumberLiteral:  "number-literal",
	EOF:            "eof",
	Builtin:        "builtin",
	Equal:          "equal",
	LParen:         "lparen",
	RParen:         "rparen",
	Semicolon:      "semicolon",
	Percent:        "percent",
	LBrace:         "lbrace",
	RBrace:         "rbrace",
	Period:         "period",
	Ellipsis2:      "ellipsis2",
	Ellipsis3:      "ellipsis3",
	Minus:          "minus",
	Arrow:          "arrow",
	Colon:          "colon",
	Slash:          "slash",
	Comma:          "comma",
	Ampersand:      "ampersand",
	AmpersandEqual: "ampersand-equal",

	KeywordAlign:       "align",
	KeywordAnd:         "and",
	KeywordAsm:         "asm",
	KeywordBreak:       "break",
	KeywordColdcc:      "coldcc",
	KeywordComptime:    "comptime",
	KeywordConst:       "const",
	KeywordContinue:    "continue",
	KeywordDefer:       "defer",
	KeywordElse:        "else",
	KeywordEnum:        "enum",
	KeywordError:       "error",
	KeywordExport:      "export",
	KeywordExtern:      "extern",
	KeywordFalse:       "false",
	KeywordFn:          "fn",
	KeywordFor:         "for",
	KeywordGoto:        "goto",
	KeywordIf:          "if",
	KeywordInline:      "inline",
	KeywordNakedcc:     "nakedcc",
	KeywordNoalias:     "noalias",
	KeywordNull:        "null",
	KeywordOr:          "or",
	KeywordPacked:      "packed",
	KeywordPub:         "pub",
	KeywordReturn:      "return",
	KeywordStdcallcc:   "stdcallcc",
	KeywordStruct:      "struct",
	KeywordSwitch:      "switch",
	KeywordTest:        "test",
	KeywordThis:        "this",
	KeywordTrue:        "true",
	KeywordUndefined:   "undefined",
	KeywordUnion:       "union",
	KeywordUnreachable: "unreachable",
	KeywordUse:         "use",
	KeywordVar:         "var",
	KeywordVolatile:    "volatile",
	KeywordWhile:       "while",
}

// String renders the tag name used in diagnostics, e.g. "identifier" or "equal".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// IsKeyword reports whether k is one of the reserved-word tags.
func (k Kind) IsKeyword() bool {
	return k > keywordsStart && k < keywordsEnd
}

//nolint:gochecknoglobals
var keywords = buildKeywordTable()

func buildKeywordTable() map[string]Kind {
	m := make(map[string]Kind, int(keywordsEnd-keywordsStart)-1)
	for k := keywordsStart + 1; k < keywordsEnd; k++ {
		m[kindNames[k]] = k
	}

	return m
}

// LookupKeyword returns the keyword Kind for lexeme and true, or (Invalid, false)
// if lexeme is not one of the reserved words in the table of §6.3.
func LookupKeyword(lexeme string) (Kind, bool) {
	k, ok := keywords[lexeme]
	return k, ok
}

// A Token is a triple (Kind, Start, End): it references the source buffer by
// byte offset only and is never itself responsible for holding the lexeme.
type Token struct {
	Kind Kind
	// StringKind is only meaningful when Kind == StringLiteral.
	StringKind StringKind
	Start      int
	End        int
}

// Lexeme returns the exact source bytes this token spans.
func (t Token) Lexeme(src []byte) string {
	return string(src[t.Start:t.End])
}

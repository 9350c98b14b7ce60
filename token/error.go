// SPDX-FileCopyrightText: © 2021 The tadl authors <https://github.com/golangee/tadl/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"strconv"
	"strings"
)

// SyntaxError is a positional diagnostic: a message anchored to a Token
// within a source buffer, with an optional wrapped cause. Unlike the
// teacher's PosError it never re-reads the file from disk — the caller
// already owns the buffer it parsed, so Explain renders directly from it.
type SyntaxError struct {
	File    string
	Src     []byte
	Tok     Token
	Message string
	Cause   error
}

// NewSyntaxError creates a SyntaxError anchored at tok.
func NewSyntaxError(file string, src []byte, tok Token, msg string) *SyntaxError {
	return &SyntaxError{
		File:    file,
		Src:     src,
		Tok:     tok,
		Message: msg,
	}
}

// SetCause attaches a wrapped cause, e.g. an AllocationFailure, and returns e
// for chaining.
func (e *SyntaxError) SetCause(err error) *SyntaxError {
	e.Cause = err
	return e
}

func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

func (e *SyntaxError) Error() string {
	loc := LocateToken(e.Src, e.Tok)

	msg := e.File + ":" + strconv.Itoa(loc.Line+1) + ":" + strconv.Itoa(loc.Column+1) + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

// Explain renders a multi-line diagnostic: the 1-indexed file:line:col, the
// offending source line, and a caret run under the token (§4.2, §7).
func (e *SyntaxError) Explain() string {
	loc := LocateToken(e.Src, e.Tok)
	line := Line(e.Src, loc)

	indent := len(strconv.Itoa(loc.Line + 1))

	sb := &strings.Builder{}

	sb.WriteString(e.File)
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(loc.Line + 1))
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(loc.Column + 1))
	sb.WriteByte('\n')

	sb.WriteString(strings.Repeat(" ", indent))
	sb.WriteString(" |\n")

	sb.WriteString(strconv.Itoa(loc.Line + 1))
	sb.WriteString(" |")
	sb.WriteString(line)
	sb.WriteByte('\n')

	sb.WriteString(strings.Repeat(" ", indent))
	sb.WriteString(" |")
	sb.WriteString(strings.Repeat(" ", loc.Column))

	caretWidth := e.Tok.End - e.Tok.Start
	if caretWidth < 1 {
		caretWidth = 1
	}

	sb.WriteString(strings.Repeat("^", caretWidth))
	sb.WriteByte(' ')
	sb.WriteString(e.Message)
	sb.WriteByte('\n')

	return sb.String()
}

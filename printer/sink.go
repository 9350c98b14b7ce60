// Package printer re-serializes an AST as canonical source text, walking it
// under its own independent work stack of RenderState records rather than
// host recursion (§4.4) — the same explicit-stack discipline the parser
// uses, applied to emission instead of consumption.
package printer

import (
	"bytes"
	"fmt"
)

// Sink is the output-stream abstraction the printer writes through (§6.4).
// It is deliberately narrow: the printer never needs seeking, flushing, or
// anything else a general io.Writer-adjacent interface would offer.
type Sink interface {
	write(b []byte) error
	print(format string, args ...interface{}) error
	writeByteNTimes(b byte, n int) error
}

// bufSink is the in-process Sink backing Print: it accumulates the
// rendered output in memory so a caller gets back a single []byte rather
// than having to thread an io.Writer through the formatter's root API.
type bufSink struct {
	buf bytes.Buffer
}

func (s *bufSink) write(b []byte) error {
	_, err := s.buf.Write(b)
	return err
}

func (s *bufSink) print(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(&s.buf, format, args...)
	return err
}

func (s *bufSink) writeByteNTimes(b byte, n int) error {
	for i := 0; i < n; i++ {
		if err := s.buf.WriteByte(b); err != nil {
			return err
		}
	}

	return nil
}

// Package cursor provides a byte-offset advancing view over BMS source text,
// tracking line/column for diagnostics without copying the underlying bytes.
package cursor

import (
	"fmt"
	"strings"
)

// Range is a half-open byte span into the source text, carried by tokens and
// diagnostics so a reader can point back at the offending text.
type Range struct {
	Start, End int
	Line, Col  int
}

// Cursor advances over an immutable source string. Every slice it returns
// borrows from the original text; nothing is copied.
type Cursor struct {
	src    string
	offset int
	line   int
	col    int
}

// New returns a Cursor positioned at the start of src.
func New(src string) *Cursor {
	return &Cursor{src: src, line: 1, col: 1}
}

// Done reports whether the cursor has consumed the entire source.
func (c *Cursor) Done() bool { return c.offset >= len(c.src) }

// Offset returns the current byte offset.
func (c *Cursor) Offset() int { return c.offset }

func (c *Cursor) advance(n int) {
	for i := 0; i < n; i++ {
		if c.src[c.offset+i] == '\n' {
			c.line++
			c.col = 1
		} else {
			c.col++
		}
	}
	c.offset += n
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// skipSpace advances past ASCII whitespace including newlines.
func (c *Cursor) skipSpace() {
	for c.offset < len(c.src) && isASCIISpace(c.src[c.offset]) {
		c.advance(1)
	}
}

// NextToken skips leading ASCII whitespace and returns the next
// whitespace-delimited slice together with its range, advancing past it. The
// skipped whitespace includes '\n', so it moves on to later lines to find a
// token; a token itself never contains whitespace and so never spans lines.
func (c *Cursor) NextToken() (string, Range, bool) {
	c.skipSpace()
	if c.Done() {
		return "", Range{}, false
	}
	startOff, startLine, startCol := c.offset, c.line, c.col
	for c.offset < len(c.src) && !isASCIISpace(c.src[c.offset]) {
		c.advance(1)
	}
	tok := c.src[startOff:c.offset]
	return tok, Range{Start: startOff, End: c.offset, Line: startLine, Col: startCol}, true
}

// NextLineTrimmed returns the remainder of the current line, trimmed of
// leading and trailing ASCII whitespace, and advances past the newline (if
// any). It does not skip leading whitespace before computing the range.
func (c *Cursor) NextLineTrimmed() (string, Range) {
	raw, rng := c.NextLineEntire()
	trimmed := strings.TrimSpace(raw)
	return trimmed, rng
}

// NextLineEntire returns the rest of the current line verbatim (untrimmed)
// and advances past it, consuming the trailing newline if present.
func (c *Cursor) NextLineEntire() (string, Range) {
	startOff, startLine, startCol := c.offset, c.line, c.col
	end := strings.IndexByte(c.src[c.offset:], '\n')
	if end < 0 {
		end = len(c.src) - c.offset
	}
	line := c.src[startOff : startOff+end]
	c.advance(end)
	rng := Range{Start: startOff, End: c.offset, Line: startLine, Col: startCol}
	if c.offset < len(c.src) && c.src[c.offset] == '\n' {
		c.advance(1)
	}
	return line, rng
}

// MakeErr builds a diagnostic error carrying the cursor's current range and
// a formatted message.
func (c *Cursor) MakeErr(format string, args ...any) error {
	return &Error{Range: Range{Start: c.offset, End: c.offset, Line: c.line, Col: c.col}, Msg: fmt.Sprintf(format, args...)}
}

// MakeErrAt builds a diagnostic error carrying an explicit range.
func MakeErrAt(rng Range, format string, args ...any) error {
	return &Error{Range: rng, Msg: fmt.Sprintf(format, args...)}
}

// Error is a diagnostic tied to a source range.
type Error struct {
	Range Range
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Range.Line, e.Range.Col, e.Msg)
}

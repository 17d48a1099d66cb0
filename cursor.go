// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/centaurean-go/chameleon

package chameleon

// Cursor is a mutable (buffer, position) pair over a caller-owned byte
// slice, passed to Process as the in/out arguments. Every kernel operation
// advances Pos in place and never reslices Data, so a Cursor can be safely
// re-entered after a stall: keep the same Cursor (or build a new one over
// the unconsumed tail) and call Process again.
type Cursor struct {
	Data []byte
	Pos  int
}

// NewCursor wraps data for use with Process, starting at its first byte.
func NewCursor(data []byte) *Cursor {
	return &Cursor{Data: data}
}

// Available returns the number of unconsumed bytes remaining in the cursor.
func (c *Cursor) Available() int {
	return len(c.Data) - c.Pos
}

// Remaining returns the unconsumed tail of the buffer.
func (c *Cursor) Remaining() []byte {
	return c.Data[c.Pos:]
}

// Advance moves the cursor forward by n bytes.
func (c *Cursor) Advance(n int) {
	c.Pos += n
}

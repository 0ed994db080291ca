package parser

import "fmt"

// Cursor is a read-only view into a single chunk plus the number of bytes consumed from it.
// It never outlives the call it was created for.
type Cursor struct {
	data     []byte
	consumed int
}

func NewCursor(data []byte) Cursor {
	return Cursor{data: data}
}

// Remaining returns the bytes that aren't consumed yet.
func (c *Cursor) Remaining() []byte {
	return c.data[c.consumed:]
}

// Consumed returns the number of bytes consumed so far.
func (c *Cursor) Consumed() int {
	return c.consumed
}

// Advance marks n more bytes as consumed. Consuming more than available is a bug
// of the caller, therefore panics.
func (c *Cursor) Advance(n int) {
	if n < 0 || n > len(c.data)-c.consumed {
		panic(fmt.Sprintf("BUG: cursor advanced by %d with %d bytes left", n, len(c.data)-c.consumed))
	}

	c.consumed += n
}

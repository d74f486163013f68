// This file is part of ttbasic.

package basic

import "github.com/vintagechips/ttbasic-lin/token"

// Cursor is an explicit (code, line, position) record standing in for the
// reference implementation's raw clp/cip byte pointers (spec.md §9 design
// notes: "Model GOSUB and FOR frames as explicit records rather than
// packed machine words"). Code is either the program store's buffer (when
// InStore is true) or a freshly tokenized direct-command line; IP indexes
// into Code at the next token to read; LineOff is the offset of the
// current entry's start within Code and is only meaningful when InStore.
type Cursor struct {
	Code    []byte
	InStore bool
	LineOff int
	IP      int
}

func (c *Cursor) peek() token.ID {
	return token.ID(c.Code[c.IP])
}

func (c *Cursor) atEOL() bool {
	return c.peek() == token.EOL
}

// next returns the current byte and moves IP forward by one.
func (c *Cursor) next() byte {
	b := c.Code[c.IP]
	c.IP++
	return b
}

// readCell reads a little-endian Cell payload (as emitted for NUM tokens)
// and advances IP past it.
func (c *Cursor) readCell() Cell {
	v := Cell(c.Code[c.IP]) | Cell(c.Code[c.IP+1])<<8
	c.IP += 2
	return v
}

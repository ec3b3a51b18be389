package cursor

// Cursor is a position-tracking view over a borrowed byte slice. It never
// copies the underlying data; extraction is plain re-slicing, so returned
// sub-slices stay valid exactly as long as the caller's buffer does.
type Cursor struct {
	data []byte
	pos  int
}

func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Peek returns the byte at the current position without consuming it.
func (c *Cursor) Peek() (b byte, ok bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}

	return c.data[c.pos], true
}

// Advance consumes a single byte. Call it only after the byte was observed
// via Peek, otherwise the position may run past the end of the data.
func (c *Cursor) Advance() {
	c.pos++
}

// Next consumes and returns the byte at the current position.
func (c *Cursor) Next() (b byte, ok bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}

	b = c.data[c.pos]
	c.pos++

	return b, true
}

// Pos reports how many bytes were consumed so far.
func (c *Cursor) Pos() int {
	return c.pos
}

// Slice returns the sub-slice of the underlying data between two previously
// observed positions.
func (c *Cursor) Slice(begin, end int) []byte {
	return c.data[begin:end]
}

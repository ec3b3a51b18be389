// Package scan implements the line-oriented scanning primitives shared by
// the request and response frame parsers. Every operation reports a
// three-way outcome: done=false with a nil error means the buffer ran out
// before a decision could be made, and the caller is expected to retry
// from offset zero once more bytes arrive.
package scan

import (
	"github.com/gemini-web/gemini/internal/cursor"
	"github.com/gemini-web/gemini/status"
)

const noLimit = -1

// SkipBlankLines consumes leading blank lines, both CRLF and bare LF.
// done means a content byte is next; a CR followed by anything but LF is
// status.ErrNewLine, unless the buffer ended right after the CR.
func SkipBlankLines(c *cursor.Cursor) (done bool, err error) {
	for {
		b, ok := c.Peek()
		if !ok {
			return false, nil
		}

		switch b {
		case '\r':
			c.Advance()

			lf, ok := c.Next()
			if !ok {
				return false, nil
			}
			if lf != '\n' {
				return false, status.ErrNewLine
			}
		case '\n':
			c.Advance()
		default:
			return true, nil
		}
	}
}

// Line consumes bytes up to and including the next line terminator and
// returns the position right past the last content byte.
func Line(c *cursor.Cursor) (end int, done bool, err error) {
	return line(c, noLimit)
}

// LineLimit is Line with a ceiling on the number of content bytes. An
// overrun is reported as status.ErrNewLine even if a terminator would have
// shown up later.
func LineLimit(c *cursor.Cursor, limit int) (end int, done bool, err error) {
	return line(c, limit)
}

func line(c *cursor.Cursor, limit int) (end int, done bool, err error) {
	start := c.Pos()

	for {
		b, ok := c.Peek()
		if !ok {
			return 0, false, nil
		}

		switch b {
		case '\r':
			c.Advance()

			lf, ok := c.Next()
			if !ok {
				return 0, false, nil
			}
			if lf != '\n' {
				return 0, false, status.ErrNewLine
			}

			return c.Pos() - 2, true, nil
		case '\n':
			c.Advance()

			return c.Pos() - 1, true, nil
		default:
			if limit != noLimit && c.Pos()-start+1 > limit {
				return 0, false, status.ErrNewLine
			}

			c.Advance()
		}
	}
}

// StatusDigits consumes exactly two ASCII digits and combines them into a
// value in [0, 99].
func StatusDigits(c *cursor.Cursor) (code int, done bool, err error) {
	tens, ok := c.Next()
	if !ok {
		return 0, false, nil
	}
	if tens < '0' || tens > '9' {
		return 0, false, status.ErrStatus
	}

	ones, ok := c.Next()
	if !ok {
		return 0, false, nil
	}
	if ones < '0' || ones > '9' {
		return 0, false, status.ErrStatus
	}

	return int(tens-'0')*10 + int(ones-'0'), true, nil
}

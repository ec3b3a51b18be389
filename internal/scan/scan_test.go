package scan

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gemini-web/gemini/internal/cursor"
	"github.com/gemini-web/gemini/status"
	"github.com/stretchr/testify/require"
)

func TestSkipBlankLines(t *testing.T) {
	t.Run("stops at content", func(t *testing.T) {
		c := cursor.New([]byte("\r\n\r\ngemini://example.com"))
		done, err := SkipBlankLines(c)
		require.NoError(t, err)
		require.True(t, done)
		require.Equal(t, 4, c.Pos())
	})

	t.Run("mixed terminators", func(t *testing.T) {
		c := cursor.New([]byte("\n\r\n\ncontent"))
		done, err := SkipBlankLines(c)
		require.NoError(t, err)
		require.True(t, done)
		require.Equal(t, 4, c.Pos())
	})

	t.Run("all blank", func(t *testing.T) {
		c := cursor.New([]byte("\r\n\r\n"))
		done, err := SkipBlankLines(c)
		require.NoError(t, err)
		require.False(t, done)
		require.Equal(t, 4, c.Pos())
	})

	t.Run("ends on a bare cr", func(t *testing.T) {
		// the lf may still arrive with the next read
		c := cursor.New([]byte("\r\n\r"))
		done, err := SkipBlankLines(c)
		require.NoError(t, err)
		require.False(t, done)
		require.Equal(t, 3, c.Pos())
	})

	t.Run("cr without lf", func(t *testing.T) {
		c := cursor.New([]byte("\r\n\ra"))
		_, err := SkipBlankLines(c)
		require.ErrorIs(t, err, status.ErrNewLine)
	})

	t.Run("empty input", func(t *testing.T) {
		c := cursor.New(nil)
		done, err := SkipBlankLines(c)
		require.NoError(t, err)
		require.False(t, done)
	})
}

func TestLine(t *testing.T) {
	t.Run("crlf", func(t *testing.T) {
		c := cursor.New([]byte("gemini://a.com\r\n"))
		end, done, err := Line(c)
		require.NoError(t, err)
		require.True(t, done)
		require.Equal(t, 14, end)
		require.Equal(t, 16, c.Pos())
	})

	t.Run("bare lf", func(t *testing.T) {
		c := cursor.New([]byte("gemini://a.com\n"))
		end, done, err := Line(c)
		require.NoError(t, err)
		require.True(t, done)
		require.Equal(t, 14, end)
		require.Equal(t, 15, c.Pos())
	})

	t.Run("no terminator yet", func(t *testing.T) {
		c := cursor.New([]byte("gemini://a.com"))
		_, done, err := Line(c)
		require.NoError(t, err)
		require.False(t, done)
	})

	t.Run("ends on a bare cr", func(t *testing.T) {
		c := cursor.New([]byte("gemini://a.com\r"))
		_, done, err := Line(c)
		require.NoError(t, err)
		require.False(t, done)
	})

	t.Run("cr without lf", func(t *testing.T) {
		c := cursor.New([]byte("gemini://a.com\r\x00"))
		_, _, err := Line(c)
		require.ErrorIs(t, err, status.ErrNewLine)
	})

	t.Run("empty line", func(t *testing.T) {
		c := cursor.New([]byte("\r\nrest"))
		end, done, err := Line(c)
		require.NoError(t, err)
		require.True(t, done)
		require.Equal(t, 0, end)
		require.Equal(t, 2, c.Pos())
	})
}

func TestLineLimit(t *testing.T) {
	t.Run("within the limit", func(t *testing.T) {
		c := cursor.New([]byte("meta\r\n"))
		end, done, err := LineLimit(c, 4)
		require.NoError(t, err)
		require.True(t, done)
		require.Equal(t, 4, end)
	})

	t.Run("overrun without terminator", func(t *testing.T) {
		c := cursor.New([]byte("text\r"))
		_, _, err := LineLimit(c, 3)
		require.ErrorIs(t, err, status.ErrNewLine)
	})

	t.Run("overrun despite terminator", func(t *testing.T) {
		c := cursor.New([]byte(strings.Repeat("a", 5) + "\r\n"))
		_, _, err := LineLimit(c, 4)
		require.ErrorIs(t, err, status.ErrNewLine)
	})
}

func TestStatusDigits(t *testing.T) {
	t.Run("every two-digit value", func(t *testing.T) {
		for want := 0; want < 100; want++ {
			c := cursor.New([]byte(fmt.Sprintf("%02d", want)))
			code, done, err := StatusDigits(c)
			require.NoError(t, err)
			require.True(t, done)
			require.Equal(t, want, code)
			require.Equal(t, 2, c.Pos())
		}
	})

	t.Run("single digit", func(t *testing.T) {
		c := cursor.New([]byte("1"))
		_, done, err := StatusDigits(c)
		require.NoError(t, err)
		require.False(t, done)
	})

	t.Run("empty input", func(t *testing.T) {
		c := cursor.New(nil)
		_, done, err := StatusDigits(c)
		require.NoError(t, err)
		require.False(t, done)
	})

	t.Run("non-digit first", func(t *testing.T) {
		c := cursor.New([]byte("a0"))
		_, _, err := StatusDigits(c)
		require.ErrorIs(t, err, status.ErrStatus)
	})

	t.Run("non-digit second", func(t *testing.T) {
		c := cursor.New([]byte("2x"))
		_, _, err := StatusDigits(c)
		require.ErrorIs(t, err, status.ErrStatus)
	})
}

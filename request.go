package gemini

import (
	"net/url"
	"unicode/utf8"

	"github.com/gemini-web/gemini/internal/cursor"
	"github.com/gemini-web/gemini/internal/scan"
	"github.com/gemini-web/gemini/status"
	"github.com/indigo-web/utils/uf"
)

// Request represents the header frame of an incoming gemini:// request.
type Request struct {
	// URL is the parsed absolute request URL. Stays nil until Parse
	// reports done.
	URL *url.URL
}

func NewRequest() *Request {
	return new(Request)
}

// Parse scans data for a complete request frame: optional blank lines,
// then a single URL line ended by CRLF or bare LF. On done it returns the
// total number of bytes the frame occupied, so the caller knows how much
// of its buffer to discard. done=false with a nil error means the frame
// is still incomplete; append more bytes and call Parse again with the
// whole buffer. No field is written until the frame fully validates.
func (r *Request) Parse(data []byte) (n int, done bool, err error) {
	c := cursor.New(data)

	if done, err = scan.SkipBlankLines(c); !done || err != nil {
		return 0, false, err
	}

	start := c.Pos()
	end, done, err := scan.Line(c)
	if !done || err != nil {
		return 0, false, err
	}

	// validating over a zero-copy view is safe, the view dies with this
	// call
	line := uf.B2S(c.Slice(start, end))
	if !utf8.ValidString(line) {
		return 0, false, status.ErrInvalidUTF8
	}

	// url.Parse keeps substrings of its input, so it must receive an
	// owned copy, never a view of the caller's buffer
	u, err := url.Parse(string(c.Slice(start, end)))
	if err != nil || !u.IsAbs() {
		return 0, false, status.ErrBadURL
	}

	r.URL = u

	return c.Pos(), true, nil
}

// Reset prepares the request for the next frame.
func (r *Request) Reset() {
	r.URL = nil
}

package gemini

import (
	"unicode/utf8"

	"github.com/gemini-web/gemini/config"
	"github.com/gemini-web/gemini/internal/cursor"
	"github.com/gemini-web/gemini/internal/scan"
	"github.com/gemini-web/gemini/status"
)

// Response represents the header frame of a gemini:// response.
type Response struct {
	// Code is the two-digit status code. Stays zero until Parse reports
	// done; the protocol assigns no meaning to codes below 10.
	Code status.Code
	// Meta is the free-text part of the header: a prompt for input codes,
	// a MIME type for success, a redirect target, or a diagnostic. Always
	// an owned copy of valid UTF-8, at most Response.MetaMaxLength bytes.
	Meta string

	cfg *config.Config
}

func NewResponse(cfg *config.Config) *Response {
	return &Response{cfg: cfg}
}

// Parse scans data for a complete response frame: two ASCII status
// digits, a single space, and a meta line ended by CRLF or bare LF.
// done=false with a nil error means the frame is still incomplete;
// append more bytes and call Parse again with the whole buffer. No field
// is written until the frame fully validates.
func (r *Response) Parse(data []byte) (done bool, err error) {
	c := cursor.New(data)

	code, done, err := scan.StatusDigits(c)
	if !done || err != nil {
		return false, err
	}

	sp, ok := c.Next()
	if !ok {
		return false, nil
	}
	if sp != ' ' {
		return false, status.ErrResponseHeader
	}

	start := c.Pos()
	end, done, err := scan.LineLimit(c, r.cfg.Response.MetaMaxLength)
	if !done || err != nil {
		return false, err
	}

	meta := c.Slice(start, end)
	if !utf8.Valid(meta) {
		return false, status.ErrInvalidUTF8
	}

	r.Code = status.Code(code)
	// data is borrowed from the caller, so the meta field must own its bytes
	r.Meta = string(meta)

	return true, nil
}

// Reset prepares the response for the next frame.
func (r *Response) Reset() {
	r.Code = 0
	r.Meta = ""
}

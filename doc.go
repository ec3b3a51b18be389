// Package gemini implements an incremental parser for the two header
// frames of the Gemini protocol: the request line (an absolute URL) and
// the response header (a two-digit status code plus a meta string).
//
// The parsers are stateless across calls. A caller owns a growing buffer
// of received bytes and repeatedly invokes Parse on the whole buffer from
// offset zero: done=false with a nil error means more bytes are needed,
// done=true means the frame's fields are populated, and a non-nil error
// means the peer violated the grammar and the connection should be
// dropped. Network I/O, TLS and buffer accumulation stay on the caller's
// side; see examples/client for the intended loop.
package gemini

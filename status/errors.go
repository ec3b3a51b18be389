package status

type GeminiError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return GeminiError{
		Code:    code,
		Message: message,
	}
}

func (g GeminiError) Error() string {
	return g.Message
}

// Parse errors are all terminal: the peer violated the wire grammar, and
// the connection must be torn down. A server answers a malformed request
// with the attached code. ErrStatus and ErrResponseHeader arise only when
// a client parses a response; there is nothing to send back, so they
// carry no code.
var (
	ErrNewLine        = NewError(BadRequest, "malformed line ending or line is too long")
	ErrInvalidUTF8    = NewError(BadRequest, "line content is not valid utf-8")
	ErrBadURL         = NewError(BadRequest, "request URL is malformed or not absolute")
	ErrResponseHeader = NewError(0, "status code must be followed by a single space")
	ErrStatus         = NewError(0, "malformed status code")
)

package status

type Code uint8

// Gemini status codes as registered by the protocol specification. The
// first digit alone is enough for a client to act on; the second digit
// refines the diagnostic.
const (
	Input          Code = 10
	SensitiveInput Code = 11

	Success Code = 20

	TemporaryRedirect Code = 30
	PermanentRedirect Code = 31

	TemporaryFailure  Code = 40
	ServerUnavailable Code = 41
	CGIError          Code = 42
	ProxyError        Code = 43
	SlowDown          Code = 44

	PermanentFailure    Code = 50
	NotFound            Code = 51
	Gone                Code = 52
	ProxyRequestRefused Code = 53
	BadRequest          Code = 59

	ClientCertificateRequired Code = 60
	CertificateNotAuthorised  Code = 61
	CertificateNotValid       Code = 62
)

// Categories are determined by the tens digit, so unregistered codes still
// fall into a well-defined class.
func IsInput(code Code) bool              { return code/10 == 1 }
func IsSuccess(code Code) bool            { return code/10 == 2 }
func IsRedirect(code Code) bool           { return code/10 == 3 }
func IsTemporaryFailure(code Code) bool   { return code/10 == 4 }
func IsPermanentFailure(code Code) bool   { return code/10 == 5 }
func IsClientCertRequired(code Code) bool { return code/10 == 6 }

// Text returns a text for the Gemini status code. It returns the empty
// string if the code is unknown.
func Text(code Code) string {
	switch code {
	case Input:
		return "Input"
	case SensitiveInput:
		return "Sensitive Input"
	case Success:
		return "Success"
	case TemporaryRedirect:
		return "Temporary Redirect"
	case PermanentRedirect:
		return "Permanent Redirect"
	case TemporaryFailure:
		return "Temporary Failure"
	case ServerUnavailable:
		return "Server Unavailable"
	case CGIError:
		return "CGI Error"
	case ProxyError:
		return "Proxy Error"
	case SlowDown:
		return "Slow Down"
	case PermanentFailure:
		return "Permanent Failure"
	case NotFound:
		return "Not Found"
	case Gone:
		return "Gone"
	case ProxyRequestRefused:
		return "Proxy Request Refused"
	case BadRequest:
		return "Bad Request"
	case ClientCertificateRequired:
		return "Client Certificate Required"
	case CertificateNotAuthorised:
		return "Certificate Not Authorised"
	case CertificateNotValid:
		return "Certificate Not Valid"
	default:
		return ""
	}
}

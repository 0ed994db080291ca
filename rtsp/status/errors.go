package status

import "errors"

// Kind classifies why a request was rejected. The deserializer collapses every kind into
// a single terminal state, the kind only travels with the error value.
type Kind uint8

const (
	// KindGrammar is a malformed method, URI, version or header line.
	KindGrammar Kind = iota + 1
	// KindCapacity is an exhausted limit: header map capacity, buffers or body size.
	KindCapacity
	// KindContentLength is a non-numeric or otherwise unparsable Content-Length value.
	KindContentLength
	// KindProtocol is any other structurally invalid sequencing.
	KindProtocol
)

func (k Kind) String() string {
	switch k {
	case KindGrammar:
		return "grammar"
	case KindCapacity:
		return "capacity"
	case KindContentLength:
		return "content-length"
	case KindProtocol:
		return "protocol"
	}

	return "unknown"
}

type Error struct {
	Message string
	Code    Code
	Kind    Kind
}

func NewError(code Code, kind Kind, message string) error {
	return Error{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

func (e Error) Error() string {
	return e.Message
}

// KindOf returns the kind of the error, if it is (or wraps) an Error. Otherwise, 0 is returned.
func KindOf(err error) Kind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}

// CodeOf returns the status code a server should respond with to the rejected request.
// Errors not produced by this package result in InternalServerError.
func CodeOf(err error) Code {
	var e Error
	if errors.As(err, &e) {
		return e.Code
	}

	return InternalServerError
}

var (
	ErrBadRequest               = NewError(BadRequest, KindGrammar, "bad request")
	ErrTooLongRequestLine       = NewError(BadRequest, KindGrammar, "request line is too long")
	ErrMethodNotImplemented     = NewError(NotImplemented, KindGrammar, "request method is not supported")
	ErrBadURI                   = NewError(BadRequest, KindGrammar, "malformed request URI")
	ErrURITooLong               = NewError(RequestURITooLong, KindCapacity, "request URI too long")
	ErrBadVersion               = NewError(BadRequest, KindGrammar, "malformed protocol version")
	ErrBadHeader                = NewError(BadRequest, KindGrammar, "malformed header line")
	ErrTooManyHeaders           = NewError(RequestEntityTooLarge, KindCapacity, "too many headers")
	ErrHeaderFieldsTooLarge     = NewError(RequestEntityTooLarge, KindCapacity, "too large headers section")
	ErrBadContentLength         = NewError(BadRequest, KindContentLength, "invalid Content-Length value")
	ErrConflictingContentLength = NewError(BadRequest, KindProtocol, "conflicting Content-Length values")
	ErrBodyTooLarge             = NewError(RequestEntityTooLarge, KindCapacity, "request body is too large")
)

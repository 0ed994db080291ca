package status

import "strconv"

type (
	Code   uint16
	Status string
)

// RTSP status codes as registered with IANA.
// See: https://www.iana.org/assignments/rtsp-parameters/rtsp-parameters.xhtml
const (
	Continue Code = 100 // RFC 2326, 7.1.1

	OK                    Code = 200 // RFC 2326, 7.1.1
	Created               Code = 201 // RFC 2326, 11.2.1
	LowOnStorageSpace     Code = 250 // RFC 2326, 11.2.2
	MultipleChoices       Code = 300 // RFC 2326, 7.1.1
	MovedPermanently      Code = 301 // RFC 2326, 7.1.1
	MovedTemporarily      Code = 302 // RFC 2326, 7.1.1
	SeeOther              Code = 303 // RFC 2326, 7.1.1
	NotModified           Code = 304 // RFC 2326, 7.1.1
	UseProxy              Code = 305 // RFC 2326, 7.1.1
	BadRequest            Code = 400 // RFC 2326, 7.1.1
	Unauthorized          Code = 401 // RFC 2326, 7.1.1
	PaymentRequired       Code = 402 // RFC 2326, 7.1.1
	Forbidden             Code = 403 // RFC 2326, 7.1.1
	NotFound              Code = 404 // RFC 2326, 7.1.1
	MethodNotAllowed      Code = 405 // RFC 2326, 11.3.1
	NotAcceptable         Code = 406 // RFC 2326, 7.1.1
	ProxyAuthRequired     Code = 407 // RFC 2326, 7.1.1
	RequestTimeout        Code = 408 // RFC 2326, 7.1.1
	Gone                  Code = 410 // RFC 2326, 7.1.1
	LengthRequired        Code = 411 // RFC 2326, 7.1.1
	PreconditionFailed    Code = 412 // RFC 2326, 7.1.1
	RequestEntityTooLarge Code = 413 // RFC 2326, 7.1.1
	RequestURITooLong     Code = 414 // RFC 2326, 7.1.1
	UnsupportedMediaType  Code = 415 // RFC 2326, 7.1.1

	ParameterNotUnderstood         Code = 451 // RFC 2326, 11.3.2
	ConferenceNotFound             Code = 452 // RFC 2326, 11.3.3
	NotEnoughBandwidth             Code = 453 // RFC 2326, 11.3.4
	SessionNotFound                Code = 454 // RFC 2326, 11.3.5
	MethodNotValidInThisState      Code = 455 // RFC 2326, 11.3.6
	HeaderFieldNotValidForResource Code = 456 // RFC 2326, 11.3.7
	InvalidRange                   Code = 457 // RFC 2326, 11.3.8
	ParameterIsReadOnly            Code = 458 // RFC 2326, 11.3.9
	AggregateOperationNotAllowed   Code = 459 // RFC 2326, 11.3.10
	OnlyAggregateOperationAllowed  Code = 460 // RFC 2326, 11.3.11
	UnsupportedTransport           Code = 461 // RFC 2326, 11.3.12
	DestinationUnreachable         Code = 462 // RFC 2326, 11.3.13

	InternalServerError     Code = 500 // RFC 2326, 7.1.1
	NotImplemented          Code = 501 // RFC 2326, 7.1.1
	BadGateway              Code = 502 // RFC 2326, 7.1.1
	ServiceUnavailable      Code = 503 // RFC 2326, 7.1.1
	GatewayTimeout          Code = 504 // RFC 2326, 7.1.1
	RTSPVersionNotSupported Code = 505 // RFC 2326, 7.1.1
	OptionNotSupported      Code = 551 // RFC 2326, 11.3.14
)

// KnownCodes lists every code Text knows a reason phrase for.
var KnownCodes = []Code{
	Continue,
	OK, Created, LowOnStorageSpace,
	MultipleChoices, MovedPermanently, MovedTemporarily, SeeOther, NotModified, UseProxy,
	BadRequest, Unauthorized, PaymentRequired, Forbidden, NotFound, MethodNotAllowed,
	NotAcceptable, ProxyAuthRequired, RequestTimeout, Gone, LengthRequired,
	PreconditionFailed, RequestEntityTooLarge, RequestURITooLong, UnsupportedMediaType,
	ParameterNotUnderstood, ConferenceNotFound, NotEnoughBandwidth, SessionNotFound,
	MethodNotValidInThisState, HeaderFieldNotValidForResource, InvalidRange,
	ParameterIsReadOnly, AggregateOperationNotAllowed, OnlyAggregateOperationAllowed,
	UnsupportedTransport, DestinationUnreachable,
	InternalServerError, NotImplemented, BadGateway, ServiceUnavailable, GatewayTimeout,
	RTSPVersionNotSupported, OptionNotSupported,
}

// Text returns a text for the RTSP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	switch code {
	case Continue:
		return "Continue"
	case OK:
		return "OK"
	case Created:
		return "Created"
	case LowOnStorageSpace:
		return "Low on Storage Space"
	case MultipleChoices:
		return "Multiple Choices"
	case MovedPermanently:
		return "Moved Permanently"
	case MovedTemporarily:
		return "Moved Temporarily"
	case SeeOther:
		return "See Other"
	case NotModified:
		return "Not Modified"
	case UseProxy:
		return "Use Proxy"
	case BadRequest:
		return "Bad Request"
	case Unauthorized:
		return "Unauthorized"
	case PaymentRequired:
		return "Payment Required"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	case NotAcceptable:
		return "Not Acceptable"
	case ProxyAuthRequired:
		return "Proxy Authentication Required"
	case RequestTimeout:
		return "Request Time-out"
	case Gone:
		return "Gone"
	case LengthRequired:
		return "Length Required"
	case PreconditionFailed:
		return "Precondition Failed"
	case RequestEntityTooLarge:
		return "Request Entity Too Large"
	case RequestURITooLong:
		return "Request-URI Too Large"
	case UnsupportedMediaType:
		return "Unsupported Media Type"
	case ParameterNotUnderstood:
		return "Parameter Not Understood"
	case ConferenceNotFound:
		return "Conference Not Found"
	case NotEnoughBandwidth:
		return "Not Enough Bandwidth"
	case SessionNotFound:
		return "Session Not Found"
	case MethodNotValidInThisState:
		return "Method Not Valid in This State"
	case HeaderFieldNotValidForResource:
		return "Header Field Not Valid for Resource"
	case InvalidRange:
		return "Invalid Range"
	case ParameterIsReadOnly:
		return "Parameter Is Read-Only"
	case AggregateOperationNotAllowed:
		return "Aggregate operation not allowed"
	case OnlyAggregateOperationAllowed:
		return "Only aggregate operation allowed"
	case UnsupportedTransport:
		return "Unsupported transport"
	case DestinationUnreachable:
		return "Destination unreachable"
	case InternalServerError:
		return "Internal Server Error"
	case NotImplemented:
		return "Not Implemented"
	case BadGateway:
		return "Bad Gateway"
	case ServiceUnavailable:
		return "Service Unavailable"
	case GatewayTimeout:
		return "Gateway Time-out"
	case RTSPVersionNotSupported:
		return "RTSP Version not supported"
	case OptionNotSupported:
		return "Option not supported"
	}

	return ""
}

// StringCode returns the decimal form of the code, as it appears in a status line.
func StringCode(code Code) string {
	return strconv.Itoa(int(code))
}

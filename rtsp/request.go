package rtsp

import (
	"bytes"
	"strings"

	"github.com/indigo-web/rtsp/rtsp/headers"
	"github.com/indigo-web/rtsp/rtsp/method"
	"github.com/indigo-web/rtsp/rtsp/proto"
)

// StartLine is the first line of a request.
type StartLine struct {
	// Method is one of the closed set of RTSP methods.
	Method method.Method
	// URI is the request URI exactly as it appeared on the wire. It isn't validated
	// neither decoded.
	URI string
	// Version is the protocol version the request was made with.
	Version proto.Version
}

// Request represents RTSP request. It's filled field by field while being deserialized,
// so must not be read until the deserializer reaches a terminal state. Strings of a
// deserialized request refer to the deserializer's memory and stay valid until its reset.
// Use Clone in order to retain the request longer.
type Request struct {
	StartLine
	// Headers holds headers in order of their appearance. The capacity of the map is
	// the maximal number of headers the request may carry.
	Headers *headers.Map
	// Body is nil if no Content-Length was presented. Otherwise, it holds exactly
	// Content-Length bytes.
	Body []byte
}

func NewRequest(hdrs *headers.Map) *Request {
	return &Request{
		StartLine: StartLine{
			Method: method.Unknown,
		},
		Headers: hdrs,
	}
}

// Reset clears the request, so it can be used for the next one. The header map
// keeps its capacity.
func (r *Request) Reset() {
	r.StartLine = StartLine{
		Method: method.Unknown,
	}
	r.Headers.Clear()
	r.Body = nil
}

// Clone returns a deep copy of the request, independent of the deserializer's memory.
func (r *Request) Clone() *Request {
	clone := &Request{
		StartLine: StartLine{
			Method:  r.Method,
			URI:     strings.Clone(r.URI),
			Version: r.Version,
		},
		Headers: r.Headers.Clone(),
		Body:    bytes.Clone(r.Body),
	}

	return clone
}

// Equal compares requests field by field. A nil body equals only a nil body.
func (r *Request) Equal(other *Request) bool {
	return r.StartLine == other.StartLine &&
		r.Headers.Equal(other.Headers) &&
		(r.Body == nil) == (other.Body == nil) &&
		bytes.Equal(r.Body, other.Body)
}

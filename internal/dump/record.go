package dump

import (
	"strings"

	"github.com/indigo-web/rtsp/rtsp"
)

// Header keeps the header pairs ordered and repeated ones separate, as they were received.
type Header struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Record is the encoded representation of a single request. Body is nil if the request
// carried no Content-Length.
type Record struct {
	Source  string   `json:"source" yaml:"source"`
	Seq     int      `json:"seq" yaml:"seq"`
	Method  string   `json:"method" yaml:"method"`
	URI     string   `json:"uri" yaml:"uri"`
	Version string   `json:"version" yaml:"version"`
	Headers []Header `json:"headers" yaml:"headers"`
	Body    *string  `json:"body,omitempty" yaml:"body,omitempty"`
}

// newRecord copies everything out of the request, so the record outlives the reset.
func newRecord(source string, seq int, request *rtsp.Request) Record {
	record := Record{
		Source:  source,
		Seq:     seq,
		Method:  request.Method.String(),
		URI:     strings.Clone(request.URI),
		Version: request.Version.String(),
		Headers: make([]Header, 0, request.Headers.Len()),
	}

	for name, value := range request.Headers.Pairs() {
		record.Headers = append(record.Headers, Header{
			Name:  strings.Clone(name),
			Value: strings.Clone(value),
		})
	}

	if request.Body != nil {
		body := string(request.Body)
		record.Body = &body
	}

	return record
}

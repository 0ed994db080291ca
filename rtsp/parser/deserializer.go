package parser

import (
	"fmt"

	"github.com/indigo-web/rtsp/config"
	"github.com/indigo-web/rtsp/internal/buffer"
	"github.com/indigo-web/rtsp/rtsp"
)

// Deserializer is a stream-based RTSP request deserializer. It fills the request it was
// constructed with field by field: method, request URI, version, header map and body, each
// one by its own sub-deserializer. A field is committed only when it's complete, however
// all the data fed is consumed exactly once, so the caller never has to re-supply it.
//
// The deserializer isn't safe for concurrent use and serves a single request at a time.
// After reaching a terminal state it must be reset, which also invalidates the strings
// of the request.
type Deserializer struct {
	cfg         *config.Config
	request     *rtsp.Request
	requestLine *buffer.Buffer
	headersBuff *buffer.Buffer
	method      methodDeserializer
	uri         uriDeserializer
	version     versionDeserializer
	headerMap   headerMapDeserializer
	// body is nil until the Content-Length is resolved
	body  *bodyDeserializer
	err   error
	state State
}

func NewDeserializer(cfg *config.Config, request *rtsp.Request) *Deserializer {
	d := &Deserializer{
		cfg:         cfg,
		request:     request,
		requestLine: buffer.New(cfg.URI.RequestLineSize.Default, cfg.URI.RequestLineSize.Maximal),
		headersBuff: buffer.New(cfg.Headers.Space.Default, cfg.Headers.Space.Maximal),
	}
	d.init()

	return d
}

func (d *Deserializer) init() {
	d.method = methodDeserializer{requestLine: d.requestLine}
	d.uri = uriDeserializer{requestLine: d.requestLine}
	d.version = versionDeserializer{}
	d.headerMap = headerMapDeserializer{buff: d.headersBuff}
	d.body = nil
	d.err = nil
	d.state = NothingParsed
}

// Deserialize feeds the chunk to the deserializer. It returns the current state, extra
// bytes that don't belong to the request (in case it's complete, so they must be fed
// to the next one), and an error explaining why the state is Err, if it is.
//
// Calls on a terminal state are no-op, returning the state, the whole chunk as an
// extra and the same error, if any.
func (d *Deserializer) Deserialize(data []byte) (state State, extra []byte, err error) {
	if d.state.Terminal() {
		return d.state, data, d.err
	}

	cursor := NewCursor(data)

	for {
		outcome, n, next, err := d.transition(cursor.Remaining())

		switch outcome {
		case OutcomeOk:
			cursor.Advance(n)

			if d.state == VersionParsed {
				next, err = d.resolveBody()
				if err != nil {
					return d.fail(err)
				}
			}

			d.state = next
			if d.state == BodyParsed {
				return d.state, cursor.Remaining(), nil
			}
		case OutcomeNeedMore:
			cursor.Advance(n)
			return d.state, cursor.Remaining(), nil
		case OutcomeErr:
			return d.fail(err)
		default:
			panic(fmt.Sprintf("BUG: unexpected outcome: %d", outcome))
		}
	}
}

// transition is the transition table: it invokes the sub-deserializer bound to the current
// state on the data, writing into the corresponding field of the request, and tells which
// state follows the field completion.
func (d *Deserializer) transition(data []byte) (outcome Outcome, n int, next State, err error) {
	request := d.request

	switch d.state {
	case NothingParsed:
		outcome, n, err = d.method.Deserialize(&request.Method, data)
		next = MethodParsed
	case MethodParsed:
		outcome, n, err = d.uri.Deserialize(&request.URI, data)
		next = RequestURIParsed
	case RequestURIParsed:
		outcome, n, err = d.version.Deserialize(&request.Version, data)
		next = VersionParsed
	case VersionParsed:
		outcome, n, err = d.headerMap.Deserialize(request.Headers, data)
		next = HeaderMapParsed
	case HeaderMapParsed:
		outcome, n, err = d.body.Deserialize(&request.Body, data)
		next = BodyParsed
	default:
		panic(fmt.Sprintf("BUG: unexpected state: %v", d.state))
	}

	return outcome, n, next, err
}

// resolveBody runs right after the header map is complete. If there's no body, the
// request is done immediately. Otherwise, the body sub-deserializer is constructed.
func (d *Deserializer) resolveBody() (next State, err error) {
	length, present, err := resolveContentLength(d.request.Headers, d.cfg.Body.MaxSize)
	if err != nil {
		return Err, err
	}

	if !present {
		d.request.Body = nil
		return BodyParsed, nil
	}

	d.body = newBodyDeserializer(length)
	return HeaderMapParsed, nil
}

func (d *Deserializer) fail(err error) (State, []byte, error) {
	d.state = Err
	d.err = err
	return d.state, nil, err
}

// State returns the current state.
func (d *Deserializer) State() State {
	return d.state
}

// Err returns the reason of the Err state, or nil.
func (d *Deserializer) Err() error {
	return d.err
}

// Reset brings the deserializer back to NothingParsed, recreating the sub-deserializers
// and clearing the request. All the strings of the request become invalid.
func (d *Deserializer) Reset() {
	d.requestLine.Clear()
	d.headersBuff.Clear()
	d.request.Reset()
	d.init()
}

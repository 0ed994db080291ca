package parser

import (
	"bytes"

	"github.com/indigo-web/rtsp/internal/buffer"
	"github.com/indigo-web/rtsp/rtsp/headers"
	"github.com/indigo-web/rtsp/rtsp/status"
	"github.com/indigo-web/utils/uf"
)

type headerState uint8

const (
	eLineStart headerState = iota
	eFinalLF
	eName
	eValueSpaces
	eValue
	eValueLF
)

// headerMapDeserializer consumes header lines one by one, appending each of them to the
// map as soon as its CRLF is met. It completes only on the empty line terminating the
// header section. Names and values are copied into the headers buffer, except well-known
// names, which are substituted by their canonical constants.
type headerMapDeserializer struct {
	buff  *buffer.Buffer
	name  string
	value string
	state headerState
}

func (h *headerMapDeserializer) Deserialize(dst *headers.Map, data []byte) (Outcome, int, error) {
	for i := 0; i < len(data); {
		switch h.state {
		case eLineStart:
			switch data[i] {
			case '\r':
				h.state = eFinalLF
				i++
			case '\n':
				return OutcomeErr, 0, status.ErrBadHeader
			default:
				if dst.Full() {
					return OutcomeErr, 0, status.ErrTooManyHeaders
				}

				h.state = eName
			}
		case eFinalLF:
			if data[i] != '\n' {
				return OutcomeErr, 0, status.ErrBadHeader
			}

			h.state = eLineStart
			return OutcomeOk, i + 1, nil
		case eName:
			colon := bytes.IndexByte(data[i:], ':')
			if colon == -1 {
				if !isName(data[i:]) {
					return OutcomeErr, 0, status.ErrBadHeader
				}

				if !h.buff.Append(data[i:]) {
					return OutcomeErr, 0, status.ErrHeaderFieldsTooLarge
				}

				i = len(data)
				continue
			}

			segment := data[i : i+colon]
			if !isName(segment) {
				return OutcomeErr, 0, status.ErrBadHeader
			}

			if !h.buff.Append(segment) {
				return OutcomeErr, 0, status.ErrHeaderFieldsTooLarge
			}

			name := h.buff.Preview()
			if len(name) == 0 {
				return OutcomeErr, 0, status.ErrBadHeader
			}

			if known, ok := headers.Known(name); ok {
				h.name = known
				h.buff.Trunc(len(name))
			} else {
				h.name = uf.B2S(h.buff.Finish())
			}

			i += colon + 1
			h.state = eValueSpaces
		case eValueSpaces:
			if data[i] == ' ' || data[i] == '\t' {
				i++
				continue
			}

			h.state = eValue
		case eValue:
			cr := bytes.IndexByte(data[i:], '\r')
			if cr == -1 {
				if bytes.IndexByte(data[i:], '\n') != -1 {
					return OutcomeErr, 0, status.ErrBadHeader
				}

				if !h.buff.Append(data[i:]) {
					return OutcomeErr, 0, status.ErrHeaderFieldsTooLarge
				}

				i = len(data)
				continue
			}

			segment := data[i : i+cr]
			if bytes.IndexByte(segment, '\n') != -1 {
				return OutcomeErr, 0, status.ErrBadHeader
			}

			if !h.buff.Append(segment) {
				return OutcomeErr, 0, status.ErrHeaderFieldsTooLarge
			}

			h.value = uf.B2S(h.buff.Finish())
			i += cr + 1
			h.state = eValueLF
		case eValueLF:
			if data[i] != '\n' {
				return OutcomeErr, 0, status.ErrBadHeader
			}

			if !dst.Add(h.name, h.value) {
				return OutcomeErr, 0, status.ErrTooManyHeaders
			}

			h.name, h.value = "", ""
			h.state = eLineStart
			i++
		}
	}

	return OutcomeNeedMore, len(data), nil
}

// isName reports whether the bytes may be a part of a header name. Emptiness isn't
// checked, as a name may be split between chunks.
func isName(b []byte) bool {
	for _, char := range b {
		if char <= ' ' || char == 0x7f {
			return false
		}
	}

	return true
}

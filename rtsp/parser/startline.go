package parser

import (
	"github.com/indigo-web/rtsp/internal/buffer"
	"github.com/indigo-web/rtsp/rtsp/method"
	"github.com/indigo-web/rtsp/rtsp/proto"
	"github.com/indigo-web/rtsp/rtsp/status"
	"github.com/indigo-web/utils/uf"
)

// methodDeserializer consumes the method token including the separating space. If the
// token is split between chunks, its beginning is kept in the request line buffer.
type methodDeserializer struct {
	requestLine *buffer.Buffer
}

func (m *methodDeserializer) Deserialize(dst *method.Method, data []byte) (Outcome, int, error) {
	for i, char := range data {
		if char == ' ' {
			var token []byte
			if m.requestLine.SegmentLength() == 0 {
				token = data[:i]
			} else {
				if !m.requestLine.Append(data[:i]) {
					return OutcomeErr, 0, status.ErrTooLongRequestLine
				}

				token = m.requestLine.Preview()
			}

			if len(token) == 0 {
				return OutcomeErr, 0, status.ErrBadRequest
			}

			*dst = method.Parse(uf.B2S(token))
			m.requestLine.Trunc(m.requestLine.SegmentLength())
			if *dst == method.Unknown {
				return OutcomeErr, 0, status.ErrMethodNotImplemented
			}

			return OutcomeOk, i + 1, nil
		}

		if !isMethodChar(char) {
			return OutcomeErr, 0, status.ErrBadRequest
		}
	}

	if m.requestLine.SegmentLength()+len(data) > method.MaxLength {
		// no known method is that long, so there's no sense in waiting for the space
		return OutcomeErr, 0, status.ErrMethodNotImplemented
	}

	if !m.requestLine.Append(data) {
		return OutcomeErr, 0, status.ErrTooLongRequestLine
	}

	return OutcomeNeedMore, len(data), nil
}

func isMethodChar(char byte) bool {
	return (char >= 'A' && char <= 'Z') || char == '_'
}

// uriDeserializer consumes the request URI including the separating space. The URI is
// opaque at this layer and is always copied into the request line buffer.
type uriDeserializer struct {
	requestLine *buffer.Buffer
}

func (u *uriDeserializer) Deserialize(dst *string, data []byte) (Outcome, int, error) {
	for i, char := range data {
		if char == ' ' {
			if i == 0 && u.requestLine.SegmentLength() == 0 {
				return OutcomeErr, 0, status.ErrBadURI
			}

			if !u.requestLine.Append(data[:i]) {
				return OutcomeErr, 0, status.ErrURITooLong
			}

			*dst = uf.B2S(u.requestLine.Finish())
			return OutcomeOk, i + 1, nil
		}

		if char < 0x21 || char == 0x7f {
			return OutcomeErr, 0, status.ErrBadURI
		}
	}

	if !u.requestLine.Append(data) {
		return OutcomeErr, 0, status.ErrURITooLong
	}

	return OutcomeNeedMore, len(data), nil
}

type versionState uint8

const (
	eScheme versionState = iota
	eMajor
	eMinor
	eVersionLF
)

// versionDeserializer consumes RTSP/<major>.<minor> followed by CRLF byte by byte, so
// nothing is buffered except the numbers parsed so far.
type versionDeserializer struct {
	version proto.Version
	offset  int
	digits  int
	state   versionState
}

func (v *versionDeserializer) Deserialize(dst *proto.Version, data []byte) (Outcome, int, error) {
	for i, char := range data {
		switch v.state {
		case eScheme:
			if char != proto.Scheme[v.offset] {
				return OutcomeErr, 0, status.ErrBadVersion
			}

			if v.offset++; v.offset == len(proto.Scheme) {
				v.state = eMajor
			}
		case eMajor:
			if char == '.' && v.digits > 0 {
				v.digits = 0
				v.state = eMinor
				continue
			}

			if !v.digit(&v.version.Major, char) {
				return OutcomeErr, 0, status.ErrBadVersion
			}
		case eMinor:
			if char == '\r' && v.digits > 0 {
				v.state = eVersionLF
				continue
			}

			if !v.digit(&v.version.Minor, char) {
				return OutcomeErr, 0, status.ErrBadVersion
			}
		case eVersionLF:
			if char != '\n' {
				return OutcomeErr, 0, status.ErrBadVersion
			}

			*dst = v.version
			return OutcomeOk, i + 1, nil
		}
	}

	return OutcomeNeedMore, len(data), nil
}

func (v *versionDeserializer) digit(dst *uint16, char byte) bool {
	if char < '0' || char > '9' || v.digits == proto.MaxDigits {
		return false
	}

	*dst = *dst*10 + uint16(char-'0')
	v.digits++
	return true
}

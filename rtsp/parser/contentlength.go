package parser

import (
	"math"

	"github.com/indigo-web/rtsp/rtsp/headers"
	"github.com/indigo-web/rtsp/rtsp/status"
)

// resolveContentLength decides whether the request has a body and how long it is. Every
// Content-Length header is taken into account: repeated ones are tolerated as long as they
// agree with each other.
func resolveContentLength(hdrs *headers.Map, maxSize uint64) (length uint64, present bool, err error) {
	for value := range hdrs.Values(headers.ContentLength) {
		n, ok := parseUint(value)
		if !ok {
			return 0, false, status.ErrBadContentLength
		}

		if present && n != length {
			return 0, false, status.ErrConflictingContentLength
		}

		length, present = n, true
	}

	if present && length > maxSize {
		return 0, false, status.ErrBodyTooLarge
	}

	return length, present, nil
}

// parseUint is a tiny implementation of strconv.ParseUint, tolerating trailing
// whitespaces and reporting overflows.
func parseUint(raw string) (num uint64, ok bool) {
	raw = trimTrailingSpaces(raw)
	if len(raw) == 0 {
		return 0, false
	}

	for i := 0; i < len(raw); i++ {
		char := raw[i] - '0'
		if char > 9 {
			return 0, false
		}

		if num > (math.MaxUint64-uint64(char))/10 {
			return 0, false
		}

		num = num*10 + uint64(char)
	}

	return num, true
}

func trimTrailingSpaces(s string) string {
	for i := len(s); i > 0; i-- {
		if s[i-1] != ' ' && s[i-1] != '\t' {
			return s[:i]
		}
	}

	return s[:0]
}

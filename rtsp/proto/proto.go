package proto

import "strconv"

// Version is the protocol version presented in the request line as RTSP/<major>.<minor>.
type Version struct {
	Major, Minor uint16
}

var (
	RTSP10 = Version{Major: 1, Minor: 0}
	RTSP20 = Version{Major: 2, Minor: 0}
)

const (
	// Scheme precedes the version numbers.
	Scheme = "RTSP/"
	// MaxDigits limits how many digits each of major and minor may contain.
	MaxDigits = 3
)

// String returns the version in its wire form, e.g. RTSP/1.0
func (v Version) String() string {
	return string(v.AppendTo(make([]byte, 0, len(Scheme)+2*MaxDigits+1)))
}

// AppendTo appends the wire form of the version to the buffer.
func (v Version) AppendTo(buff []byte) []byte {
	buff = append(buff, Scheme...)
	buff = strconv.AppendUint(buff, uint64(v.Major), 10)
	buff = append(buff, '.')
	return strconv.AppendUint(buff, uint64(v.Minor), 10)
}

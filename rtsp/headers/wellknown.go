package headers

// Well-known header names in their canonical form. A parsed name matching one of them
// exactly is stored as the constant itself.
const (
	Accept          = "Accept"
	AcceptEncoding  = "Accept-Encoding"
	AcceptLanguage  = "Accept-Language"
	Authorization   = "Authorization"
	Bandwidth       = "Bandwidth"
	Blocksize       = "Blocksize"
	CacheControl    = "Cache-Control"
	Conference      = "Conference"
	Connection      = "Connection"
	ContentBase     = "Content-Base"
	ContentEncoding = "Content-Encoding"
	ContentLength   = "Content-Length"
	ContentLocation = "Content-Location"
	ContentType     = "Content-Type"
	CSeq            = "CSeq"
	Date            = "Date"
	From            = "From"
	IfModifiedSince = "If-Modified-Since"
	LastModified    = "Last-Modified"
	ProxyRequire    = "Proxy-Require"
	Range           = "Range"
	Referer         = "Referer"
	Require         = "Require"
	Scale           = "Scale"
	Session         = "Session"
	Speed           = "Speed"
	Transport       = "Transport"
	UserAgent       = "User-Agent"
	Via             = "Via"
)

// Known returns the canonical constant for the name, if the name is a well-known one.
// The comparison is exact, so e.g. content-length is treated as any other name.
func Known(name []byte) (string, bool) {
	var candidate string

	switch len(name) {
	case 3:
		candidate = Via
	case 4:
		switch name[0] {
		case 'C':
			candidate = CSeq
		case 'D':
			candidate = Date
		case 'F':
			candidate = From
		}
	case 5:
		switch name[1] {
		case 'a':
			candidate = Range
		case 'c':
			candidate = Scale
		case 'p':
			candidate = Speed
		}
	case 6:
		candidate = Accept
	case 7:
		switch name[2] {
		case 'f':
			candidate = Referer
		case 'q':
			candidate = Require
		case 's':
			candidate = Session
		}
	case 9:
		switch name[0] {
		case 'B':
			if name[1] == 'a' {
				candidate = Bandwidth
			} else {
				candidate = Blocksize
			}
		case 'T':
			candidate = Transport
		}
	case 10:
		switch name[3] {
		case 'f':
			candidate = Conference
		case 'n':
			candidate = Connection
		case 'r':
			candidate = UserAgent
		}
	case 12:
		switch name[8] {
		case 'B':
			candidate = ContentBase
		case 'T':
			candidate = ContentType
		}
	case 13:
		switch name[0] {
		case 'A':
			candidate = Authorization
		case 'C':
			candidate = CacheControl
		case 'L':
			candidate = LastModified
		case 'P':
			candidate = ProxyRequire
		}
	case 14:
		candidate = ContentLength
	case 15:
		switch name[0] {
		case 'A':
			if name[7] == 'E' {
				candidate = AcceptEncoding
			} else {
				candidate = AcceptLanguage
			}
		}
	case 16:
		switch name[8] {
		case 'E':
			candidate = ContentEncoding
		case 'L':
			candidate = ContentLocation
		}
	case 17:
		candidate = IfModifiedSince
	}

	if len(candidate) == 0 || string(name) != candidate {
		return "", false
	}

	return candidate, true
}

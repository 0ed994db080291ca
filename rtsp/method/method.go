package method

type Method uint8

const (
	Unknown Method = iota
	ANNOUNCE
	DESCRIBE
	GET_PARAMETER
	OPTIONS
	PAUSE
	PLAY
	PLAY_NOTIFY
	RECORD
	REDIRECT
	SETUP
	SET_PARAMETER
	TEARDOWN

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported RTSP methods. They are sorted by their integer value, however
// Unknown method is not included. So in order to index the List, you must subtract 1 first.
var List = []Method{
	ANNOUNCE, DESCRIBE, GET_PARAMETER, OPTIONS, PAUSE, PLAY, PLAY_NOTIFY,
	RECORD, REDIRECT, SETUP, SET_PARAMETER, TEARDOWN,
}

var names = [...]string{
	Unknown:       "UNKNOWN",
	ANNOUNCE:      "ANNOUNCE",
	DESCRIBE:      "DESCRIBE",
	GET_PARAMETER: "GET_PARAMETER",
	OPTIONS:       "OPTIONS",
	PAUSE:         "PAUSE",
	PLAY:          "PLAY",
	PLAY_NOTIFY:   "PLAY_NOTIFY",
	RECORD:        "RECORD",
	REDIRECT:      "REDIRECT",
	SETUP:         "SETUP",
	SET_PARAMETER: "SET_PARAMETER",
	TEARDOWN:      "TEARDOWN",
}

func (m Method) String() string {
	if int(m) >= len(names) {
		return names[Unknown]
	}

	return names[m]
}

// MaxLength is the length of the longest known method token.
const MaxLength = len("GET_PARAMETER")

func Parse(str string) Method {
	switch len(str) {
	case 4:
		if str == "PLAY" {
			return PLAY
		}
	case 5:
		if str == "PAUSE" {
			return PAUSE
		} else if str == "SETUP" {
			return SETUP
		}
	case 6:
		if str == "RECORD" {
			return RECORD
		}
	case 7:
		if str == "OPTIONS" {
			return OPTIONS
		}
	case 8:
		switch str {
		case "ANNOUNCE":
			return ANNOUNCE
		case "DESCRIBE":
			return DESCRIBE
		case "REDIRECT":
			return REDIRECT
		case "TEARDOWN":
			return TEARDOWN
		}
	case 11:
		if str == "PLAY_NOTIFY" {
			return PLAY_NOTIFY
		}
	case 13:
		if str == "GET_PARAMETER" {
			return GET_PARAMETER
		} else if str == "SET_PARAMETER" {
			return SET_PARAMETER
		}
	}

	return Unknown
}

package parser

// State is the state of the request deserializer. States are ordered as the request
// fields are: each non-terminal state names the last completed field, so the field
// being currently consumed is the next one. While the header section is being consumed,
// the state stays VersionParsed until the terminating empty line.
type State uint8

const (
	NothingParsed State = iota
	MethodParsed
	RequestURIParsed
	VersionParsed
	HeaderMapParsed
	// BodyParsed is terminal and means the request is complete.
	BodyParsed
	// Err is terminal and means the request is malformed. The deserializer must be reset
	// before feeding it any other data.
	Err
)

var stateNames = [...]string{
	NothingParsed:    "NothingParsed",
	MethodParsed:     "MethodParsed",
	RequestURIParsed: "RequestURIParsed",
	VersionParsed:    "VersionParsed",
	HeaderMapParsed:  "HeaderMapParsed",
	BodyParsed:       "BodyParsed",
	Err:              "Err",
}

func (s State) String() string {
	if int(s) >= len(stateNames) {
		return "Unknown"
	}

	return stateNames[s]
}

// Terminal reports whether no further transition is possible from the state.
func (s State) Terminal() bool {
	return s == BodyParsed || s == Err
}

// Pending reports whether the request is incomplete and more data is expected.
func (s State) Pending() bool {
	return !s.Terminal()
}

// Outcome is what a field sub-deserializer reports after consuming a chunk.
type Outcome uint8

const (
	// OutcomeOk means the field is complete and written into its destination.
	OutcomeOk Outcome = iota + 1
	// OutcomeNeedMore means all the data was consumed, but the field isn't complete yet.
	OutcomeNeedMore
	// OutcomeErr means the field is malformed and never becomes valid.
	OutcomeErr
)

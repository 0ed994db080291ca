package parser

// bodyDeserializer consumes exactly the number of bytes it was constructed with, copying
// them into a slice of that capacity. It exists only once the body length is known.
type bodyDeserializer struct {
	body []byte
	left uint64
}

func newBodyDeserializer(length uint64) *bodyDeserializer {
	return &bodyDeserializer{
		body: make([]byte, 0, length),
		left: length,
	}
}

func (b *bodyDeserializer) Deserialize(dst *[]byte, data []byte) (Outcome, int, error) {
	if uint64(len(data)) < b.left {
		b.body = append(b.body, data...)
		b.left -= uint64(len(data))
		return OutcomeNeedMore, len(data), nil
	}

	n := int(b.left)
	b.body = append(b.body, data[:n]...)
	b.left = 0
	*dst = b.body

	return OutcomeOk, n, nil
}

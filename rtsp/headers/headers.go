package headers

import (
	"iter"
	"strings"

	"github.com/indigo-web/utils/strcomp"
)

type Header struct {
	Name, Value string
}

// Map is an insertion-ordered associative structure of headers with a fixed capacity, set
// once at construction. Lookups are linear, which is cheaper than hashing for the amount
// of headers a request usually carries. Repeated names are never merged.
type Map struct {
	headers []Header
}

// New returns a Map able to hold at most capacity headers.
func New(capacity int) *Map {
	return &Map{
		headers: make([]Header, 0, capacity),
	}
}

// Add appends the header. If the map is full, it's left intact and false is returned.
func (m *Map) Add(name, value string) (ok bool) {
	if m.Full() {
		return false
	}

	m.headers = append(m.headers, Header{
		Name:  name,
		Value: value,
	})

	return true
}

// Set overrides the value of the first header with exactly matching name. If there's
// none, the header is added the same way Add does.
func (m *Map) Set(name, value string) (ok bool) {
	for i := range m.headers {
		if m.headers[i].Name == name {
			m.headers[i].Value = value
			return true
		}
	}

	return m.Add(name, value)
}

// Get returns the value of the first header with exactly matching name.
func (m *Map) Get(name string) (value string, found bool) {
	for _, header := range m.headers {
		if header.Name == name {
			return header.Value, true
		}
	}

	return "", false
}

// GetFold is Get with case-insensitive name comparison.
func (m *Map) GetFold(name string) (value string, found bool) {
	for _, header := range m.headers {
		if strcomp.EqualFold(header.Name, name) {
			return header.Value, true
		}
	}

	return "", false
}

// Value returns the first value of the name, or an empty string.
func (m *Map) Value(name string) string {
	value, _ := m.Get(name)
	return value
}

// Values iterates over all the values of headers with exactly matching name, in order
// of their insertion.
func (m *Map) Values(name string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, header := range m.headers {
			if header.Name == name && !yield(header.Value) {
				return
			}
		}
	}
}

// Has indicates, whether there's a header of the name.
func (m *Map) Has(name string) bool {
	_, found := m.Get(name)
	return found
}

// Pairs iterates over all the headers in order of their insertion.
func (m *Map) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, header := range m.headers {
			if !yield(header.Name, header.Value) {
				return
			}
		}
	}
}

// Len returns a number of stored headers.
func (m *Map) Len() int {
	return len(m.headers)
}

// Cap returns the maximal number of headers the map can hold.
func (m *Map) Cap() int {
	return cap(m.headers)
}

func (m *Map) Full() bool {
	return len(m.headers) >= cap(m.headers)
}

// Expose exposes the underlying headers slice. It must not be grown.
func (m *Map) Expose() []Header {
	return m.headers
}

// Clear all the entries. The capacity stays the same.
func (m *Map) Clear() {
	m.headers = m.headers[:0]
}

// Clone creates a deep copy of the map with the same capacity. Names and values are
// copied as well, so the result doesn't depend on the memory the original refers to.
func (m *Map) Clone() *Map {
	clone := New(m.Cap())
	for _, header := range m.headers {
		name := header.Name
		if _, known := Known([]byte(name)); !known {
			name = strings.Clone(name)
		}

		clone.headers = append(clone.headers, Header{
			Name:  name,
			Value: strings.Clone(header.Value),
		})
	}

	return clone
}

// Equal compares headers of both maps pairwise, including their order.
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}

	for i, header := range m.headers {
		if header != other.headers[i] {
			return false
		}
	}

	return true
}


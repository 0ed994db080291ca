package buffer

// Buffer hosts non-interrelated byte sequences (segments) in a single bounded slice of memory.
// A segment is being written streamingly until it's finished, after which it stays intact
// until the whole buffer is cleared. Finished segments are never moved, even if the
// underlying memory grows, so byte views onto them stay valid until Clear.
type Buffer struct {
	memory  []byte
	begin   int
	maxSize int
}

func New(initialSize, maxSize int) *Buffer {
	return &Buffer{
		memory:  make([]byte, 0, initialSize),
		maxSize: maxSize,
	}
}

// Append writes data into the current segment, checking whether the new amount of bytes
// doesn't exceed the limit, otherwise discarding the data and returning false.
func (b *Buffer) Append(data []byte) (ok bool) {
	if len(b.memory)+len(data) > b.maxSize {
		return false
	}

	b.memory = append(b.memory, data...)
	return true
}

// SegmentLength returns a number of bytes taken by the current segment.
func (b *Buffer) SegmentLength() int {
	return len(b.memory) - b.begin
}

// Preview returns current segment without completing it.
func (b *Buffer) Preview() []byte {
	return b.memory[b.begin:]
}

// Trunc truncates the last n bytes from the current segment, guarantying that data of previous
// segments stays intact.
func (b *Buffer) Trunc(n int) {
	if seglen := b.SegmentLength(); n > seglen {
		n = seglen
	}

	b.memory = b.memory[:len(b.memory)-n]
}

// Finish completes current segment, returning its value. Capacity of the returned slice is
// clipped, so appending to it never overwrites the next segment.
func (b *Buffer) Finish() []byte {
	segment := b.memory[b.begin:len(b.memory):len(b.memory)]
	b.begin = len(b.memory)

	return segment
}

// Clear just resets the pointers, so old values may be overridden by new ones.
func (b *Buffer) Clear() {
	b.begin = 0
	b.memory = b.memory[:0]
}

package dump

import (
	"io"
)

// AppendWire serializes the record back into the request it was made of. Headers are
// written in their original order, so the Content-Length (if any) is preserved too.
func (r Record) AppendWire(buff []byte) []byte {
	buff = append(buff, r.Method...)
	buff = append(buff, ' ')
	buff = append(buff, r.URI...)
	buff = append(buff, ' ')
	buff = append(buff, r.Version...)
	buff = append(buff, '\r', '\n')

	for _, h := range r.Headers {
		buff = header(buff, h)
	}

	buff = append(buff, '\r', '\n')
	if r.Body != nil {
		buff = append(buff, *r.Body...)
	}

	return buff
}

func header(b []byte, h Header) []byte {
	b = append(b, h.Name...)
	b = append(b, ':', ' ')
	b = append(b, h.Value...)

	return append(b, '\r', '\n')
}

type wireEncoder struct {
	w    io.Writer
	buff []byte
}

func (w *wireEncoder) Encode(record Record) error {
	w.buff = record.AppendWire(w.buff[:0])
	_, err := w.w.Write(w.buff)
	return err
}

func (*wireEncoder) Close() error {
	return nil
}

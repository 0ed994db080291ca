// Package dump deserializes RTSP requests out of a byte stream and writes them out as
// records.
package dump

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/indigo-web/rtsp/config"
	"github.com/indigo-web/rtsp/rtsp"
	"github.com/indigo-web/rtsp/rtsp/headers"
	"github.com/indigo-web/rtsp/rtsp/parser"
	"github.com/indigo-web/rtsp/rtsp/status"
	"github.com/sirupsen/logrus"
)

const DefaultChunkSize = 4096

type Dumper struct {
	log          logrus.FieldLogger
	enc          Encoder
	request      *rtsp.Request
	deserializer *parser.Deserializer
	chunk        []byte
	// pending is set if any byte of the current request was fed
	pending bool
}

// New returns a dumper reading the streams by chunks of chunkSize bytes. Zero chunkSize
// means DefaultChunkSize.
func New(cfg *config.Config, chunkSize int, enc Encoder, log logrus.FieldLogger) (*Dumper, error) {
	switch {
	case chunkSize == 0:
		chunkSize = DefaultChunkSize
	case chunkSize < 0:
		return nil, fmt.Errorf("invalid chunk size: %d", chunkSize)
	}

	request := rtsp.NewRequest(headers.New(cfg.Headers.Number.Maximal))

	return &Dumper{
		log:          log,
		enc:          enc,
		request:      request,
		deserializer: parser.NewDeserializer(cfg, request),
		chunk:        make([]byte, chunkSize),
	}, nil
}

// Dump reads the stream until EOF and encodes every request met in it. The source names
// the stream in records and errors. It returns how many requests were dumped. Dumping
// stops at the first malformed request, as the deserializer can't resynchronize with
// the stream.
func (d *Dumper) Dump(ctx context.Context, source string, r io.Reader) (count int, err error) {
	defer d.reset()
	d.reset()
	log := d.log.WithField("source", source)

	for {
		if err = ctx.Err(); err != nil {
			return count, err
		}

		n, readErr := r.Read(d.chunk)
		if n > 0 {
			count, err = d.feed(log, source, count, d.chunk[:n])
			if err != nil {
				return count, err
			}
		}

		switch {
		case readErr == nil:
		case errors.Is(readErr, io.EOF):
			if d.pending {
				log.WithField("state", d.deserializer.State().String()).Warn("stream ended in the middle of a request")
				return count, fmt.Errorf("%s: request #%d: %w", source, count+1, io.ErrUnexpectedEOF)
			}

			log.WithField("requests", count).Debug("stream is over")
			return count, nil
		default:
			return count, fmt.Errorf("%s: read: %w", source, readErr)
		}
	}
}

func (d *Dumper) feed(log logrus.FieldLogger, source string, count int, data []byte) (int, error) {
	for len(data) > 0 {
		d.pending = true
		state, extra, err := d.deserializer.Deserialize(data)

		switch state {
		case parser.BodyParsed:
			count++
			log.WithFields(logrus.Fields{
				"seq":     count,
				"method":  d.request.Method.String(),
				"uri":     d.request.URI,
				"headers": d.request.Headers.Len(),
				"body":    len(d.request.Body),
			}).Debug("request parsed")

			if err = d.enc.Encode(newRecord(source, count, d.request)); err != nil {
				return count - 1, fmt.Errorf("%s: request #%d: encode: %w", source, count, err)
			}

			d.reset()
			data = extra
		case parser.Err:
			log.WithFields(logrus.Fields{
				"seq":  count + 1,
				"kind": status.KindOf(err).String(),
				"code": status.CodeOf(err),
			}).WithError(err).Warn("malformed request")

			return count, fmt.Errorf("%s: request #%d: %w", source, count+1, err)
		default:
			return count, nil
		}
	}

	return count, nil
}

func (d *Dumper) reset() {
	d.deserializer.Reset()
	d.pending = false
}

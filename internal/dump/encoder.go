package dump

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Encoder writes records into the output one after another. Close flushes whatever
// is left and must be called after the last record.
type Encoder interface {
	Encode(record Record) error
	Close() error
}

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	// FormatWire re-serializes requests, normalizing the whitespaces of header lines.
	FormatWire Format = "wire"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NewEncoder returns an encoder for the format. JSON records are newline-delimited, YAML
// ones are separate documents and wire ones are simply concatenated.
func NewEncoder(format Format, w io.Writer) (Encoder, error) {
	switch format {
	case FormatJSON, "":
		return jsonEncoder{json.NewEncoder(w)}, nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return yamlEncoder{enc}, nil
	case FormatWire:
		return &wireEncoder{w: w}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (must be json, yaml or wire)", format)
	}
}

type jsonEncoder struct {
	enc *jsoniter.Encoder
}

func (j jsonEncoder) Encode(record Record) error {
	return j.enc.Encode(record)
}

func (jsonEncoder) Close() error {
	return nil
}

type yamlEncoder struct {
	enc *yaml.Encoder
}

func (y yamlEncoder) Encode(record Record) error {
	return y.enc.Encode(record)
}

func (y yamlEncoder) Close() error {
	return y.enc.Close()
}

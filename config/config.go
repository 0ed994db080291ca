package config

import "fmt"

type (
	HeadersNumber struct {
		Maximal int `mapstructure:"maximal"`
	}

	HeadersSpace struct {
		Default int `mapstructure:"default"`
		Maximal int `mapstructure:"maximal"`
	}

	URIRequestLineSize struct {
		Default int `mapstructure:"default"`
		Maximal int `mapstructure:"maximal"`
	}
)

type (
	URI struct {
		// RequestLineSize is a buffer storing method and request URI tokens in case they
		// were split between chunks, or the URI itself in any case. Maximal value therefore
		// limits the length of the request URI.
		RequestLineSize URIRequestLineSize `mapstructure:"request_line_size"`
	}

	Headers struct {
		// Number is the capacity of the header map, every next header is rejected.
		Number HeadersNumber `mapstructure:"number"`
		// Space limits the amount of memory occupied by header names and values.
		Space HeadersSpace `mapstructure:"space"`
	}

	Body struct {
		// MaxSize describes the maximal Content-Length, that can be accepted. 0 rejects any
		// request with a non-empty body.
		MaxSize uint64 `mapstructure:"max_size"`
	}
)

// Config holds restrictions and pre-allocations of the deserializer.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	URI     URI     `mapstructure:"uri"`
	Headers Headers `mapstructure:"headers"`
	Body    Body    `mapstructure:"body"`
}

// Default returns default config. RTSP requests are mostly tiny control messages, however
// ANNOUNCE and SET_PARAMETER may carry SDP or parameter bodies of a few kilobytes.
func Default() *Config {
	return &Config{
		URI: URI{
			RequestLineSize: URIRequestLineSize{
				Default: 512,
				Maximal: 8 * 1024,
			},
		},
		Headers: Headers{
			Number: HeadersNumber{
				Maximal: 64,
			},
			Space: HeadersSpace{
				Default: 1 * 1024,
				Maximal: 16 * 1024,
			},
		},
		Body: Body{
			MaxSize: 4 * 1024 * 1024,
		},
	}
}

// Validate checks whether every limit is positive and soft limits don't exceed hard ones.
func (c *Config) Validate() error {
	pairs := []struct {
		name             string
		initial, maximal int
	}{
		{"uri.request_line_size", c.URI.RequestLineSize.Default, c.URI.RequestLineSize.Maximal},
		{"headers.space", c.Headers.Space.Default, c.Headers.Space.Maximal},
	}

	if c.Headers.Number.Maximal <= 0 {
		return fmt.Errorf("headers.number: maximal must be positive")
	}

	for _, pair := range pairs {
		if pair.initial < 0 || pair.maximal <= 0 {
			return fmt.Errorf("%s: limits must be positive", pair.name)
		}

		if pair.initial > pair.maximal {
			return fmt.Errorf("%s: default (%d) exceeds maximal (%d)", pair.name, pair.initial, pair.maximal)
		}
	}

	return nil
}

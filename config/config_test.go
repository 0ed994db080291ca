package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoZeroFields(t *testing.T) {
	cfg := Default()

	for _, field := range visit(newVar(*cfg), "Config") {
		assert.Fail(t, "zero-value field", field)
	}

	require.NoError(t, cfg.Validate())
}

type variable struct {
	Type  reflect.Type
	Value reflect.Value
}

func newVar(a any) variable {
	return variable{reflect.TypeOf(a), reflect.ValueOf(a)}
}

func visit(a variable, name string) (fields []string) {
	if a.Type.Kind() == reflect.Struct {
		for field := range a.Value.NumField() {
			v1 := variable{a.Type.Field(field).Type, a.Value.Field(field)}
			fields = append(fields, visit(v1, name+"."+a.Type.Field(field).Name)...)
		}

		return fields
	}

	if a.Value.IsZero() {
		return []string{name}
	}

	return nil
}

func writeConfig(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Headers.Space.Default = cfg.Headers.Space.Maximal + 1
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Headers.Number.Maximal = 0
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.URI.RequestLineSize.Maximal = 0
	require.Error(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("yaml partial", func(t *testing.T) {
		path := writeConfig(t, "rtsp.yaml", `
rtsp:
  headers:
    number:
      maximal: 3
  body:
    max_size: 10
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 3, cfg.Headers.Number.Maximal)
		require.Equal(t, uint64(10), cfg.Body.MaxSize)
		require.Equal(t, Default().Headers.Space, cfg.Headers.Space)
		require.Equal(t, Default().URI, cfg.URI)
	})

	t.Run("maximal below built-in default", func(t *testing.T) {
		path := writeConfig(t, "rtsp.yaml", `
rtsp:
  uri:
    request_line_size:
      maximal: 128
  headers:
    space:
      maximal: 256
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, URIRequestLineSize{Default: 128, Maximal: 128}, cfg.URI.RequestLineSize)
		require.Equal(t, HeadersSpace{Default: 256, Maximal: 256}, cfg.Headers.Space)
	})

	t.Run("maximal from env below built-in default", func(t *testing.T) {
		t.Setenv("RTSP_HEADERS_SPACE_MAXIMAL", "100")
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, HeadersSpace{Default: 100, Maximal: 100}, cfg.Headers.Space)
	})

	t.Run("explicit default from env exceeding maximal", func(t *testing.T) {
		t.Setenv("RTSP_HEADERS_SPACE_DEFAULT", "2048")
		t.Setenv("RTSP_HEADERS_SPACE_MAXIMAL", "100")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("RTSP_BODY_MAX_SIZE", "42")
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, uint64(42), cfg.Body.MaxSize)
	})

	t.Run("invalid", func(t *testing.T) {
		path := writeConfig(t, "rtsp.yaml", `
rtsp:
  headers:
    space:
      default: 100
      maximal: 10
`)
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nonexisting.yaml"))
		require.Error(t, err)
	})
}

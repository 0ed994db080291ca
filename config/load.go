package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables overriding the values, e.g.
// RTSP_HEADERS_NUMBER_MAXIMAL.
const EnvPrefix = "RTSP"

type configRoot struct {
	RTSP Config `mapstructure:"rtsp"`
}

// Load reads the configuration file using `rtsp:` as a root key. Any value missing in the
// file keeps its default, and any value can be overridden by environment variables. An empty
// path results in the defaults with environment overrides applied. A built-in initial size
// exceeding the configured maximal one is lowered to it, but an explicitly set one is not.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, Default())

	if len(path) > 0 {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var root configRoot
	if err := v.Unmarshal(&root); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg := root.RTSP
	clampDefaults(v, &cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	prefix := strings.ToLower(EnvPrefix) + "."

	v.SetDefault(prefix+"uri.request_line_size.default", cfg.URI.RequestLineSize.Default)
	v.SetDefault(prefix+"uri.request_line_size.maximal", cfg.URI.RequestLineSize.Maximal)
	v.SetDefault(prefix+"headers.number.maximal", cfg.Headers.Number.Maximal)
	v.SetDefault(prefix+"headers.space.default", cfg.Headers.Space.Default)
	v.SetDefault(prefix+"headers.space.maximal", cfg.Headers.Space.Maximal)
	v.SetDefault(prefix+"body.max_size", cfg.Body.MaxSize)
}

func clampDefaults(v *viper.Viper, cfg *Config) {
	limits := []struct {
		key     string
		initial *int
		maximal int
	}{
		{"uri.request_line_size", &cfg.URI.RequestLineSize.Default, cfg.URI.RequestLineSize.Maximal},
		{"headers.space", &cfg.Headers.Space.Default, cfg.Headers.Space.Maximal},
	}

	for _, limit := range limits {
		if *limit.initial > limit.maximal && !isExplicit(v, limit.key+".default") {
			*limit.initial = limit.maximal
		}
	}
}

func isExplicit(v *viper.Viper, key string) bool {
	key = strings.ToLower(EnvPrefix) + "." + key
	_, inEnv := os.LookupEnv(strings.ToUpper(strings.ReplaceAll(key, ".", "_")))

	return inEnv || v.InConfig(key)
}

// Package log builds the logrus logger used by the tooling.
package log

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File, if set, duplicates the output into a rotated file.
	File     string       `mapstructure:"file"`
	Rotation RotationOpts `mapstructure:"rotation"`
}

type RotationOpts struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	Compress   bool `mapstructure:"compress"`
}

func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "text",
		Rotation: RotationOpts{
			MaxSizeMB:  16,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// New returns a logger writing into out and, if configured, into the log file.
func New(cfg Config, out io.Writer) (*logrus.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	formatter, err := newFormatter(cfg.Format)
	if err != nil {
		return nil, err
	}

	if len(cfg.File) > 0 {
		out = io.MultiWriter(out, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.Rotation.MaxSizeMB,
			MaxBackups: cfg.Rotation.MaxBackups,
			MaxAge:     cfg.Rotation.MaxAgeDays,
			Compress:   cfg.Rotation.Compress,
		})
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(formatter)

	return logger, nil
}

func parseLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return logrus.InfoLevel, nil
	case "warning":
		return logrus.WarnLevel, nil
	default:
		return logrus.ParseLevel(level)
	}
}

func newFormatter(format string) (logrus.Formatter, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return &logrus.TextFormatter{
			DisableColors:    true,
			FullTimestamp:    true,
			QuoteEmptyFields: true,
		}, nil
	case "json":
		return &logrus.JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported log format: %s (must be json or text)", format)
	}
}

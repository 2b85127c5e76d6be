// Package logging builds the application logger. The TUI owns the terminal,
// so log output goes to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pacer/internal/config"
)

// New returns a JSON file logger at cfg.Level. An empty cfg.File yields a
// no-op logger.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "json"
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{cfg.File}
	zc.ErrorOutputPaths = []string{cfg.File}
	zc.Sampling = nil

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// ParseLevel maps a config level name to a zap level. Empty means info.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

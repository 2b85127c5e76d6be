package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pacer/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewWithoutFile(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "debug"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger without a file should be a no-op")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pacer.log")

	logger, err := New(config.LogConfig{Level: "warn", File: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("dropped")
	logger.Warn("kept", zap.Float64("distance", 2000))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "dropped") {
		t.Errorf("info entry written at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"kept"`) || !strings.Contains(out, `"distance":2000`) {
		t.Errorf("log output = %s", out)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")})
	if err == nil {
		t.Error("New() with invalid level should fail")
	}
}

package test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/uncefact/tests-untp-sub002/pkg/logger"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	l := logger.New()
	if l == nil {
		t.Fatal("Expected logger to be created, got nil")
	}
}

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name   string
		config logger.LoggerConfig
	}{
		{
			name:   "Default log level when no level specified",
			config: logger.LoggerConfig{LogLevel: zerolog.NoLevel},
		},
		{
			name:   "Debug log level",
			config: logger.LoggerConfig{LogLevel: zerolog.DebugLevel},
		},
		{
			name:   "Error log level",
			config: logger.LoggerConfig{LogLevel: zerolog.ErrorLevel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := logger.NewFromConfig(tt.config)
			if l == nil {
				t.Fatal("Expected logger to be created, got nil")
			}
		})
	}
}

func TestLoggerWithOutput(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf)

	l.Info("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected output to contain 'test message', got: %s", output)
	}
}

func TestLoggerWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf).WithLevel(zerolog.ErrorLevel)

	// Filtered out by the level
	l.Info("info message")
	l.Error(errors.New("test error"), "error message")

	output := buf.String()
	if strings.Contains(output, "info message") {
		t.Error("Info message should not appear when level is set to Error")
	}
	if !strings.Contains(output, "error message") {
		t.Error("Error message should appear when level is set to Error")
	}
}

func TestLoggerWithField(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf).WithField("serviceInstanceId", "instance-1")

	l.Info("resolving")

	output := buf.String()
	if !strings.Contains(output, `"serviceInstanceId":"instance-1"`) {
		t.Errorf("Expected output to carry the constant field, got: %s", output)
	}
}

func TestLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf).WithLevel(zerolog.DebugLevel)

	l.Debug("debug message")

	output := buf.String()
	if !strings.Contains(output, "debug message") {
		t.Errorf("Expected output to contain 'debug message', got: %s", output)
	}
	if !strings.Contains(output, `"level":"debug"`) {
		t.Error("Expected log level to be debug")
	}
}

func TestLoggerInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf)

	l.Info("info message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected output to contain 'info message', got: %s", output)
	}
	if !strings.Contains(output, `"level":"info"`) {
		t.Error("Expected log level to be info")
	}
}

func TestLoggerFormattedVariants(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf).WithLevel(zerolog.DebugLevel)

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	l.Warnf("warn %d", 3)
	l.Errorf(errors.New("boom"), "error %d", 4)

	output := buf.String()
	for _, expected := range []string{"debug 1", "info 2", "warn 3", "error 4", "boom"} {
		if !strings.Contains(output, expected) {
			t.Errorf("Expected output to contain %q, got: %s", expected, output)
		}
	}
}

func TestLoggerError(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf)

	l.Error(errors.New("something failed"), "operation aborted")

	output := buf.String()
	if !strings.Contains(output, "something failed") {
		t.Errorf("Expected output to carry the error, got: %s", output)
	}
	if !strings.Contains(output, "operation aborted") {
		t.Errorf("Expected output to carry the message, got: %s", output)
	}
}

func TestDefaultLoggerNeedsNoSetup(t *testing.T) {
	if logger.Default() == nil {
		t.Fatal("Expected a usable default logger without initialization")
	}
}

func TestInitDefaultLoggerArgs(t *testing.T) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{
		Args: []logger.LoggerArg{
			{Key: "service", Value: "pkg-test"},
		},
	})
	if logger.Default() == nil {
		t.Fatal("Expected default logger after initialization")
	}
}

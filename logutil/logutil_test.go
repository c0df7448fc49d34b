// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetupLogger(t *testing.T) {
	SetupLogger(true, false)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetupLogger(false, false)
	if GetLevel() != LevelInfo {
		t.Errorf("expected LevelInfo, got %v", GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"unknown", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsDebugEnabledEnvVar(t *testing.T) {
	SetupLoggerWithWriter(&bytes.Buffer{}, false, false)

	t.Setenv(EnvDebug, "true")
	if !IsDebugEnabled() {
		t.Error("expected debug to be enabled via env var")
	}

	t.Setenv(EnvDebug, "")
	if IsDebugEnabled() {
		t.Error("expected debug to be disabled")
	}
}

func TestLogOutputText(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, true, false)

	Debug("loaded flags", "path", "/etc/chromium-flags.conf")

	output := buf.String()
	if !strings.Contains(output, "loaded flags") {
		t.Errorf("expected log output to contain message, got: %s", output)
	}
	if !strings.Contains(output, "path=/etc/chromium-flags.conf") {
		t.Errorf("expected log output to contain path, got: %s", output)
	}
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, true)

	Error("argv assembled", "count", 42)

	output := buf.String()
	if !strings.Contains(output, `"msg":"argv assembled"`) {
		t.Errorf("expected JSON output with msg field, got: %s", output)
	}
	if !strings.Contains(output, `"count":42`) {
		t.Errorf("expected JSON output with count field, got: %s", output)
	}
}

func TestSetLevelFiltersWarn(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}

	NewLogger("check").Warn("hidden")
	Error("visible")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("warn message should be filtered at error level, got: %s", output)
	}
	if !strings.Contains(output, "visible") {
		t.Errorf("expected error message, got: %s", output)
	}
}

func TestSetupFromEnv(t *testing.T) {
	t.Cleanup(func() { SetupLogger(false, false) })

	tests := []struct {
		name string
		env  map[string]string
		want Level
	}{
		{name: "unset", env: map[string]string{}, want: LevelInfo},
		{name: "debug switch", env: map[string]string{EnvDebug: "true"}, want: LevelDebug},
		{name: "level name", env: map[string]string{EnvLogLevel: "warn"}, want: LevelWarn},
		{name: "level wins over debug", env: map[string]string{EnvDebug: "true", EnvLogLevel: "error"}, want: LevelError},
		{name: "unknown level", env: map[string]string{EnvLogLevel: "loud"}, want: LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetupFromEnv(func(key string) string { return tt.env[key] })
			if got := GetLevel(); got != tt.want {
				t.Errorf("GetLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDebugWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	t.Setenv(EnvDebug, "")

	Debug("should not appear")

	if strings.Contains(buf.String(), "should not appear") {
		t.Errorf("debug message should not appear when debug is disabled, got: %s", buf.String())
	}
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	NewLogger("check").Warn("world-writable flags file", "path", "/tmp/x")

	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("expected WARN level, got: %s", buf.String())
	}
}

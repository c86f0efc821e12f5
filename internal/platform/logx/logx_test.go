// internal/platform/logx/logx_test.go
package logx

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	logger := New()
	if logger == nil {
		t.Fatal("New() should return a logger, got nil")
	}
}

func TestNew_RunnerDebug(t *testing.T) {
	t.Setenv("SETUP_VIM_LOG_LEVEL", "error")
	t.Setenv("RUNNER_DEBUG", "1")

	logger := New().(*ptermLogger)
	if *logger.lvl != LevelDebug {
		t.Errorf("RUNNER_DEBUG=1 should force debug level, got %v", *logger.lvl)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"dbg", LevelDebug},
		{"  debug  ", LevelDebug},
		{"info", LevelInfo},
		{"inf", LevelInfo},
		{"", LevelInfo},
		{"warn", LevelWarn},
		{"Warning", LevelWarn},
		{"err", LevelError},
		{"ERROR", LevelError},
		{"garbage", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEvenPairs(t *testing.T) {
	tests := []struct {
		name     string
		input    []any
		expected []any
	}{
		{"empty input", []any{}, []any{}},
		{"single pair", []any{"key", "value"}, []any{"key", "value"}},
		{"odd number of elements", []any{"key1", "value1", "key2"}, []any{"key1", "value1", "key2", "(missing)"}},
		{"non-string key", []any{42, true}, []any{"42", true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := evenPairs(tt.input...)
			if len(result) != len(tt.expected) {
				t.Fatalf("expected %d elements, got %d", len(tt.expected), len(result))
			}
			for i, exp := range tt.expected {
				if result[i] != exp {
					t.Errorf("element %d: expected %v, got %v", i, exp, result[i])
				}
			}
		})
	}
}

func TestStringifyValues(t *testing.T) {
	out := stringifyValues([]any{"args", []string{"-y", "vim-gtk3"}, "error", errors.New("boom"), "n", 3})
	if out[1] != "-y vim-gtk3" {
		t.Errorf("slices should be joined, got %v", out[1])
	}
	if out[3] != "boom" {
		t.Errorf("errors should be rendered, got %v", out[3])
	}
	if out[5] != 3 {
		t.Errorf("other values should pass through, got %v", out[5])
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelDebug)

	scoped := logger.With("component", "acquire", "os", "linux")
	scoped.Info("test message")

	output := buf.String()
	for _, want := range []string{"test message", "component", "acquire", "os", "linux"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

func TestLogger_With_Immutable(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelDebug)

	scoped := logger.With("component", "validator")

	if len(logger.(*ptermLogger).scope) != 0 {
		t.Errorf("original logger should not have scope, got: %v", logger.(*ptermLogger).scope)
	}
	if len(scoped.(*ptermLogger).scope) != 2 {
		t.Errorf("scoped logger should have 1 pair, got: %v", scoped.(*ptermLogger).scope)
	}

	logger.Info("original")
	if strings.Contains(buf.String(), "validator") {
		t.Errorf("original logger output should not contain scope: %s", buf.String())
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     Level
		shouldAppear map[string]bool
	}{
		{
			name:     "debug level - all appear",
			logLevel: LevelDebug,
			shouldAppear: map[string]bool{
				"debug-msg": true, "info-msg": true, "warn-msg": true, "boom-err": true,
			},
		},
		{
			name:     "info level - no debug",
			logLevel: LevelInfo,
			shouldAppear: map[string]bool{
				"debug-msg": false, "info-msg": true, "warn-msg": true, "boom-err": true,
			},
		},
		{
			name:     "error level - only errors",
			logLevel: LevelError,
			shouldAppear: map[string]bool{
				"debug-msg": false, "info-msg": false, "warn-msg": false, "boom-err": true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithWriter(&buf, tt.logLevel)

			logger.Debug("debug-msg")
			logger.Info("info-msg")
			logger.Warn("warn-msg")
			logger.Err(errors.New("boom-err"))

			output := buf.String()
			for msg, want := range tt.shouldAppear {
				if got := strings.Contains(output, msg); got != want {
					t.Errorf("%s appearing = %v, want %v (output: %s)", msg, got, want, output)
				}
			}
		})
	}
}

func TestLogger_Err_Nil(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelDebug)

	logger.Err(nil, "phase", "validate")

	if buf.Len() != 0 {
		t.Errorf("nil error should not log anything, got: %s", buf.String())
	}
}

func TestLogger_SetLevel_SharedWithScoped(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelInfo)
	scoped := logger.With("component", "x")

	logger.SetLevel(LevelDebug)
	scoped.Debug("now-visible")

	if !strings.Contains(buf.String(), "now-visible") {
		t.Errorf("scoped logger should follow parent level, got: %s", buf.String())
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	logger.Err(errors.New("ignored"))
	logger.Info("ignored")
}

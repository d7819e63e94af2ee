package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	t.Run("String creates field with key and string value", func(t *testing.T) {
		f := String("engine", "exec")
		if f.Key != "engine" {
			t.Errorf("String().Key = %q, want %q", f.Key, "engine")
		}
		if f.Value != "exec" {
			t.Errorf("String().Value = %q, want %q", f.Value, "exec")
		}
	})

	t.Run("Int creates field with key and int value", func(t *testing.T) {
		f := Int("workers", 8)
		if f.Key != "workers" {
			t.Errorf("Int().Key = %q, want %q", f.Key, "workers")
		}
		if f.Value != 8 {
			t.Errorf("Int().Value = %v, want %v", f.Value, 8)
		}
	})

	t.Run("Int64 creates field with key and int64 value", func(t *testing.T) {
		f := Int64("seed", 11)
		if f.Key != "seed" {
			t.Errorf("Int64().Key = %q, want %q", f.Key, "seed")
		}
		if f.Value != int64(11) {
			t.Errorf("Int64().Value = %v, want %v", f.Value, int64(11))
		}
	})

	t.Run("Float64 creates field with key and float64 value", func(t *testing.T) {
		f := Float64("alpha", 0.7)
		if f.Key != "alpha" {
			t.Errorf("Float64().Key = %q, want %q", f.Key, "alpha")
		}
		if f.Value != 0.7 {
			t.Errorf("Float64().Value = %v, want %v", f.Value, 0.7)
		}
	})

	t.Run("Dur creates field with key and duration value", func(t *testing.T) {
		f := Dur("elapsed", 3*time.Second)
		if f.Key != "elapsed" {
			t.Errorf("Dur().Key = %q, want %q", f.Key, "elapsed")
		}
		if f.Value != 3*time.Second {
			t.Errorf("Dur().Value = %v, want %v", f.Value, 3*time.Second)
		}
	})

	t.Run("Err creates field with error key", func(t *testing.T) {
		testErr := errors.New("test error")
		f := Err(testErr)
		if f.Key != "error" {
			t.Errorf("Err().Key = %q, want %q", f.Key, "error")
		}
		if f.Value != testErr {
			t.Errorf("Err().Value = %v, want %v", f.Value, testErr)
		}
	})
}

// TestNewZerologAdapter tests the ZerologAdapter constructor.
func TestNewZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	adapter := NewZerologAdapter(zl)

	if adapter == nil {
		t.Fatal("NewZerologAdapter returned nil")
	}

	adapter.Info("test message")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("NewZerologAdapter logger not working, output: %s", buf.String())
	}
}

// TestNewDefaultLogger tests the default logger constructor.
func TestNewDefaultLogger(t *testing.T) {
	logger := NewDefaultLogger()
	if logger == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

// TestNewLogger tests the custom logger constructor.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "orchestration")

	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}

	logger.Info("hello")
	output := buf.String()

	if !strings.Contains(output, "orchestration") {
		t.Errorf("NewLogger should include component field, got: %s", output)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("NewLogger should include message, got: %s", output)
	}
}

// TestZerologAdapter_Info tests the Info method.
func TestZerologAdapter_Info(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		fields   []Field
		contains []string
	}{
		{
			name:     "no fields",
			msg:      "batch started",
			fields:   nil,
			contains: []string{"batch started", "info"},
		},
		{
			name:     "with string field",
			msg:      "engine selected",
			fields:   []Field{String("engine", "exec")},
			contains: []string{"engine selected", "exec"},
		},
		{
			name:     "with multiple fields",
			msg:      "job finished",
			fields:   []Field{Int("run", 2), Float64("objective", 812.5)},
			contains: []string{"job finished", "2", "812.5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Info(tt.msg, tt.fields...)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

// TestZerologAdapter_Error tests the Error method.
func TestZerologAdapter_Error(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		err      error
		fields   []Field
		contains []string
	}{
		{
			name:     "with error",
			msg:      "solve failed",
			err:      errors.New("model infeasible"),
			fields:   nil,
			contains: []string{"solve failed", "model infeasible", "error"},
		},
		{
			name:     "with nil error",
			msg:      "warning",
			err:      nil,
			fields:   nil,
			contains: []string{"warning", "error"},
		},
		{
			name:     "with error and fields",
			msg:      "session error",
			err:      errors.New("process exited"),
			fields:   []Field{Float64("alpha", 0.8), Int("run", 1)},
			contains: []string{"session error", "process exited", "0.8", "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Error(tt.msg, tt.err, tt.fields...)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

// TestZerologAdapter_Debug tests the Debug method.
func TestZerologAdapter_Debug(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).Level(zerolog.DebugLevel)
	logger := NewZerologAdapter(zl)

	logger.Debug("debug message", String("key", "value"))

	output := buf.String()
	if !strings.Contains(output, "debug message") {
		t.Errorf("Debug output should contain message, got: %s", output)
	}
	if !strings.Contains(output, "debug") {
		t.Errorf("Debug output should contain level, got: %s", output)
	}
}

// TestZerologAdapter_Printf tests the Printf method.
func TestZerologAdapter_Printf(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Printf("formatted %s %d", "message", 42)

	output := buf.String()
	if !strings.Contains(output, "formatted message 42") {
		t.Errorf("Printf should format message, got: %s", output)
	}
}

// TestZerologAdapter_applyFields tests field application with all supported types.
func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string field", Field{Key: "str", Value: "hello"}, "hello"},
		{"int field", Field{Key: "num", Value: 42}, "42"},
		{"int64 field", Field{Key: "big", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64 field", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64 field", Field{Key: "pi", Value: 3.14}, "3.14"},
		{"error field", Field{Key: "err", Value: errors.New("oops")}, "oops"},
		{"bool field", Field{Key: "flag", Value: true}, "true"},
		{"interface field", Field{Key: "data", Value: struct{ X int }{X: 1}}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Info("test", tt.field)

			output := buf.String()
			if !strings.Contains(output, tt.contains) {
				t.Errorf("applyFields should handle %s, output: %s", tt.name, output)
			}
		})
	}
}

// TestNewStdLoggerAdapter tests the StdLoggerAdapter constructor.
func TestNewStdLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	stdLogger := log.New(&buf, "", 0)
	adapter := NewStdLoggerAdapter(stdLogger)

	if adapter == nil {
		t.Fatal("NewStdLoggerAdapter returned nil")
	}

	adapter.Info("test")
	if !strings.Contains(buf.String(), "test") {
		t.Errorf("StdLoggerAdapter not working, output: %s", buf.String())
	}

	adapter.Error("broken", errors.New("cause"), Int("run", 3))
	output := buf.String()
	if !strings.Contains(output, "cause") || !strings.Contains(output, "run=3") {
		t.Errorf("StdLoggerAdapter.Error missing fields, output: %s", output)
	}
}

// TestParseLevel tests the configuration level mapping.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		expected zerolog.Level
	}{
		{"debug", "debug", zerolog.DebugLevel},
		{"info", "info", zerolog.InfoLevel},
		{"warn", "warn", zerolog.WarnLevel},
		{"error", "error", zerolog.ErrorLevel},
		{"disabled", "disabled", zerolog.Disabled},
		{"unknown falls back to info", "verbose", zerolog.InfoLevel},
		{"empty falls back to info", "", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.arg); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.arg, got, tt.expected)
			}
		})
	}
}

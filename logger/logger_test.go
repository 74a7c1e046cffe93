package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON log line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNewWithWriter_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "debug")

	l.Info("request completed", Fields(FieldURL, "https://x.test/a", FieldStatus, 200))

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0]["message"] != "request completed" {
		t.Errorf("unexpected message %v", lines[0]["message"])
	}
	if lines[0][FieldURL] != "https://x.test/a" {
		t.Errorf("unexpected url %v", lines[0][FieldURL])
	}
	if lines[0][FieldStatus] != float64(200) {
		t.Errorf("unexpected status %v", lines[0][FieldStatus])
	}
	if lines[0]["level"] != "info" {
		t.Errorf("unexpected level %v", lines[0]["level"])
	}
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn")

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown")

	if got := len(decodeLines(t, &buf)); got != 2 {
		t.Errorf("expected 2 lines at warn level, got %d", got)
	}
}

func TestNewWithWriter_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "nope")
	l.Debug("hidden")
	l.Info("shown")
	if got := len(decodeLines(t, &buf)); got != 1 {
		t.Errorf("expected 1 line, got %d", got)
	}
}

func TestNop(t *testing.T) {
	Nop().Error("discarded", Fields("k", "v"))
}

func TestWithComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info").
		WithComponent("httpclient").
		WithFields(map[string]interface{}{"base_url": "https://x.test"})

	l.Info("ready")

	line := decodeLines(t, &buf)[0]
	if line[FieldComponent] != "httpclient" {
		t.Errorf("expected component field, got %v", line[FieldComponent])
	}
	if line["base_url"] != "https://x.test" {
		t.Errorf("expected base_url field, got %v", line["base_url"])
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, "info").WithError(fmt.Errorf("boom")).Error("failed")
	if line := decodeLines(t, &buf)[0]; line[FieldError] != "boom" {
		t.Errorf("expected error field, got %v", line[FieldError])
	}
}

func TestWithContext_TraceIDs(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	var buf bytes.Buffer
	NewWithWriter(&buf, "info").WithContext(ctx).Info("traced")

	line := decodeLines(t, &buf)[0]
	if line[FieldTraceID] != span.SpanContext().TraceID().String() {
		t.Errorf("expected trace id, got %v", line[FieldTraceID])
	}
	if line[FieldSpanID] != span.SpanContext().SpanID().String() {
		t.Errorf("expected span id, got %v", line[FieldSpanID])
	}
}

func TestWithContext_NoSpan(t *testing.T) {
	l := NewWithWriter(&bytes.Buffer{}, "info")
	if got := l.WithContext(context.Background()); got != l {
		t.Error("expected the same logger when ctx has no span")
	}
}

func TestNew_JSONCarriesService(t *testing.T) {
	l := New(&Config{Level: "info", Format: "json", Output: "stderr"}, "gofetch")
	if l.Service() != "gofetch" {
		t.Errorf("expected service 'gofetch', got %q", l.Service())
	}
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l.Service() != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.Service())
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	l := NewFromEnv("env-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestGlobalLogger(t *testing.T) {
	prev := globalLogger
	defer func() { globalLogger = prev }()

	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}

	var buf bytes.Buffer
	l := NewWithWriter(&buf, "debug")
	SetGlobalLogger(l)
	Debug("d")
	Info("i")
	Warn("w")
	Error("e")
	WithComponent("cli").Info("tagged")
	WithContext(context.Background()).Info("plain")

	if got := len(decodeLines(t, &buf)); got != 6 {
		t.Errorf("expected 6 lines through the global logger, got %d", got)
	}
}

func TestInit(t *testing.T) {
	prev := globalLogger
	defer func() {
		globalLogger = prev
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}()

	Init(Config{Level: "info", Format: "json", Output: "stderr"})
	if GetGlobalLogger() == nil {
		t.Fatal("expected global logger to be set after Init")
	}
}

func TestRegisterAndGet(t *testing.T) {
	l := NewWithWriter(&bytes.Buffer{}, "info")
	Register("my-component", l)
	defer Unregister("my-component")

	if got := Get("my-component"); got != l {
		t.Error("expected Get to return the registered logger")
	}
	Unregister("my-component")
	if got := Get("my-component"); got == l {
		t.Error("expected unregistered name to fall back to the global logger")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != FormatConsole {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected output 'stderr', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected Timestamp to be true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json", Output: "stderr"}, false},
		{"valid console", Config{Level: "debug", Format: "console", Output: "stdout"}, false},
		{"invalid level", Config{Level: "bad", Format: "json", Output: "stderr"}, true},
		{"invalid format", Config{Level: "info", Format: "xml", Output: "stderr"}, true},
		{"invalid output", Config{Level: "info", Format: "json", Output: "file"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFormatLevel(t *testing.T) {
	tests := []struct {
		level   string
		service string
		want    string
	}{
		{"info", "", "[INF]"},
		{"error", "default", "[ERR]"},
		{"warn", "gofetch", "[GOF][WRN]"},
		{"custom", "", "[CUSTOM]"},
	}
	for _, tt := range tests {
		if got := formatLevel(tt.level, tt.service, true); got != tt.want {
			t.Errorf("formatLevel(%q, %q) = %q, want %q", tt.level, tt.service, got, tt.want)
		}
	}
	if got := formatLevel("info", "", false); !strings.Contains(got, "\033[32m") {
		t.Errorf("expected color escape, got %q", got)
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		name     string
		input    []interface{}
		expected map[string]interface{}
	}{
		{
			"key-value pairs",
			[]interface{}{"url", "u", "status", 200},
			map[string]interface{}{"url": "u", "status": 200},
		},
		{
			"odd number of args",
			[]interface{}{"url", "u", "trailing"},
			map[string]interface{}{"url": "u"},
		},
		{
			"non-string key skipped",
			[]interface{}{123, "value", "key", "val"},
			map[string]interface{}{"key": "val"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Fields(tc.input...)
			if len(result) != len(tc.expected) {
				t.Errorf("expected %d fields, got %d", len(tc.expected), len(result))
			}
			for k, v := range tc.expected {
				if result[k] != v {
					t.Errorf("Fields[%q] = %v, expected %v", k, result[k], v)
				}
			}
		})
	}
}

func TestErrorAndDurationFields(t *testing.T) {
	ef := ErrorFields("https://x.test/", fmt.Errorf("something broke"))
	if ef[FieldURL] != "https://x.test/" || ef[FieldError] != "something broke" {
		t.Errorf("unexpected error fields %v", ef)
	}

	df := DurationFields("https://x.test/", 150*time.Millisecond)
	if df[FieldDuration] != int64(150) {
		t.Errorf("expected duration 150, got %v", df[FieldDuration])
	}
}

func TestMergeHelpers(t *testing.T) {
	err := fmt.Errorf("test error")
	if got := MergeWithError(nil, err); got[FieldError] != "test error" {
		t.Errorf("expected error field from nil map, got %v", got[FieldError])
	}
	fields := map[string]interface{}{"url": "u"}
	got := MergeWithDuration(fields, 200*time.Millisecond)
	if got[FieldDuration] != int64(200) || got["url"] != "u" {
		t.Errorf("unexpected merged fields %v", got)
	}
}

func TestOutputWriter(t *testing.T) {
	if outputWriter("stdout") != os.Stdout {
		t.Error("expected stdout")
	}
	if outputWriter("") != os.Stderr {
		t.Error("expected stderr by default")
	}
}

package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func captureDefault(t *testing.T, opts ...Option) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	original := Default()
	t.Cleanup(func() { SetDefault(original) })

	SetDefault(Make(&buf, append([]Option{WithTimeLayout("none")}, opts...)...))

	return &buf
}

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	buf := captureDefault(t, WithLevel(LevelTrace), WithFormat(FormatText))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
	}{
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
		{"TraceContext", func(msg string, attrs ...slog.Attr) {
			TraceContext(t.Context(), msg, attrs...)
		}, "TRACE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn("message", slog.String("key", "value"))

			want := "level=" + tt.level + " msg=message key=value\n"
			if buf.String() != want {
				t.Errorf("got %q, want %q", buf.String(), want)
			}
		})
	}
}

func TestPackage_ContextFunctions(t *testing.T) {
	buf := captureDefault(t, WithLevel(LevelDebug), WithFormat(FormatText))
	ctx := context.Background()

	DebugContext(ctx, "d")
	InfoContext(ctx, "i")
	WarnContext(ctx, "w")
	ErrorContext(ctx, "e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), buf.String())
	}
}

func TestPackage_Config(t *testing.T) {
	buf := captureDefault(t, WithFormat(FormatText))

	Config(WithLevel(LevelError))
	Info("dropped")
	Error("kept")

	if got := buf.String(); got != "level=ERROR msg=kept\n" {
		t.Errorf("got %q", got)
	}
}

func TestPackage_With(t *testing.T) {
	buf := captureDefault(t, WithFormat(FormatText))

	With(slog.String("component", "lang")).Info("ready")

	if got := buf.String(); got != "level=INFO msg=ready component=lang\n" {
		t.Errorf("got %q", got)
	}
}

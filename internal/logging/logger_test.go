package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"mcarve/internal/services"
)

func newBufferLogger(t *testing.T, format string) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelDebug)

	var handler slog.Handler
	switch format {
	case "json":
		handler = newJSONHandler(buf, levelVar, false)
	default:
		handler = newPrettyHandler(buf, levelVar, false)
	}
	return slog.New(handler), buf
}

func TestPrettyHandlerPromotesComponent(t *testing.T) {
	logger, buf := newBufferLogger(t, "console")
	NewComponentLogger(logger, "workflow").Info("stage started", String(FieldStage, "reproject"))

	line := buf.String()
	if !strings.Contains(line, "workflow: stage started") {
		t.Fatalf("component not promoted into message: %q", line)
	}
	if !strings.Contains(line, "stage=reproject") {
		t.Fatalf("attribute missing: %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should not appear as key=value: %q", line)
	}
}

func TestPrettyHandlerQuotesValuesWithSpaces(t *testing.T) {
	logger, buf := newBufferLogger(t, "console")
	logger.Warn("tile failed", String("detail", "no such file"))
	if !strings.Contains(buf.String(), `detail="no such file"`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}

func TestWithContextCarriesPipelineFields(t *testing.T) {
	logger, buf := newBufferLogger(t, "console")

	ctx := services.WithProject(context.Background(), "fuji")
	ctx = services.WithStage(ctx, "generate")
	ctx = services.WithBatch(ctx, 2)
	WithContext(ctx, logger).Info("batch complete")

	line := buf.String()
	for _, want := range []string{"project=fuji", "stage=generate", "batch=2"} {
		if !strings.Contains(line, want) {
			t.Fatalf("missing %q in %q", want, line)
		}
	}
}

func TestJSONHandlerRenamesCoreKeys(t *testing.T) {
	logger, buf := newBufferLogger(t, "json")
	logger.Info("hello")
	line := buf.String()
	for _, want := range []string{`"ts":`, `"level":"info"`, `"msg":"hello"`} {
		if !strings.Contains(line, want) {
			t.Fatalf("missing %q in %q", want, line)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("should not panic", Error(nil))
}

package medial

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(l)
	if Logger() != l {
		t.Fatal("logger wasn't set")
	}
	skeletonizeBar(t)
	for _, msg := range []string{"medial axis extracted", "skeleton built", "primitives fitted"} {
		if !strings.Contains(buf.String(), msg) {
			t.Errorf("log doesn't mention %q", msg)
		}
	}

	SetLogger(nil)
	if Logger() == nil || Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("nil didn't restore the silent logger")
	}
}

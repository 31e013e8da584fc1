package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetup_InfoLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, &buf)

	slog.Debug("hidden")
	slog.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug messages should be suppressed at info level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("info messages should be logged: %q", out)
	}
}

func TestSetup_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, &buf)

	slog.Debug("shown", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "shown") {
		t.Errorf("debug messages should be logged at debug level: %q", out)
	}
	if !strings.Contains(out, "key=value") {
		t.Errorf("attributes should use text format: %q", out)
	}
}

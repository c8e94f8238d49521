package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/memegen/pkg/ports"
)

func TestConsoleLogger_Levels(t *testing.T) {
	var stdout, stderr bytes.Buffer
	log := NewConsoleTo(ports.LevelInfo, &stdout, &stderr)

	log.Debug("hidden %d", 1)
	log.Info("shown %d", 2)
	log.Warn("warned %d", 3)
	log.Error("failed %d", 4)

	if strings.Contains(stdout.String(), "hidden") {
		t.Error("expected debug message to be filtered at info level")
	}
	if !strings.Contains(stdout.String(), "shown 2") {
		t.Errorf("expected info on stdout, got %q", stdout.String())
	}
	if got := stderr.String(); !strings.Contains(got, "warned 3") || !strings.Contains(got, "failed 4") {
		t.Errorf("expected warn and error on stderr, got %q", got)
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var stdout, stderr bytes.Buffer
	log := NewConsoleTo(ports.LevelQuiet, &stdout, &stderr)

	log.Error("nothing")

	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Error("expected no output at quiet level")
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var stdout bytes.Buffer
	log := NewConsoleTo(ports.LevelDebug, &stdout, &stdout)

	log.WithComponent("decode").Debug("Decoded %d %s frame(s) at %dx%d", 3, "gif", 10, 20)

	if got := stdout.String(); !strings.HasPrefix(got, "[decode] ") {
		t.Errorf("expected component prefix, got %q", got)
	}
}

func TestNoopLogger_WithComponent(t *testing.T) {
	log := NewNoop()
	if got := log.WithComponent("decode"); got != ports.Logger(log) {
		t.Error("expected WithComponent to return the same no-op logger")
	}
	log.Info("Listening on %s", ":8080")
}

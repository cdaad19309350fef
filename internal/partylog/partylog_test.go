package partylog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapPlainLogger_CarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := WrapPlainLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	servant := logger.WithComponent("party.servant").With("servant", 3)
	servant.Info("present added", "present", 42)

	line := buf.String()
	assert.Contains(t, line, "component=party.servant")
	assert.Contains(t, line, "servant=3")
	assert.Contains(t, line, "present=42")
	assert.Contains(t, line, `msg="present added"`)
}

func TestWrapPlainLogger_WithDoesNotLeakIntoParent(t *testing.T) {
	var buf bytes.Buffer
	logger := WrapPlainLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	_ = logger.With("child", true)
	logger.Warn("parent")

	assert.False(t, strings.Contains(buf.String(), "child"))
}

func TestDiscard(t *testing.T) {
	logger := Discard().WithComponent("x").With("k", "v")
	logger.Debug("nothing")
	logger.Error("nothing")
	assert.Same(t, Discard(), logger)
}

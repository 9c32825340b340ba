package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger returns a text logger writing into the returned buffer so
// tests can assert on attribute keys. Debug entries are captured too.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), &buf
}

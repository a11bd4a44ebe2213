package internal

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestOptionsApply(t *testing.T) {
	cfg := NewDefaultConfig()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	app := &application{}
	for _, opt := range []Option{WithConfig(cfg), WithLogger(logger)} {
		opt(app)
	}

	if app.config != cfg {
		t.Error("WithConfig did not set the configuration")
	}
	if app.logger != logger {
		t.Error("WithLogger did not set the logger")
	}
}

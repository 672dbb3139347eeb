package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelTrace, ParseLevel("trace"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestLevelFilterSplitsOutput(t *testing.T) {
	var out, errs bytes.Buffer
	h := NewMultiHandler(
		NewLevelFilter(func(l slog.Level) bool { return l < slog.LevelError },
			slog.NewTextHandler(&out, &slog.HandlerOptions{Level: LevelTrace, ReplaceAttr: replaceLevel})),
		NewLevelFilter(func(l slog.Level) bool { return l >= slog.LevelError },
			slog.NewTextHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError})),
	)
	logger := slog.New(h).With("remote", "127.0.0.1:1")

	logger.Info("api cmd", "path", "ping")
	logger.Log(context.Background(), LevelTrace, "raw")
	logger.Error("boom")

	assert.Contains(t, out.String(), "api cmd")
	assert.Contains(t, out.String(), "level=TRACE")
	assert.Contains(t, out.String(), "remote=127.0.0.1:1")
	assert.NotContains(t, out.String(), "boom")
	assert.Contains(t, errs.String(), "boom")
	assert.NotContains(t, errs.String(), "api cmd")
}

func TestMultiHandlerEnabled(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))

	grouped := slog.New(h.WithGroup("api"))
	grouped.Warn("slow", "ms", 12)
	assert.Contains(t, buf.String(), "api.ms=12")
}

func TestRawLogger(t *testing.T) {
	var buf bytes.Buffer
	r := NewRaw(&buf)
	r.Log("1.2.3.4:5", true, []byte("locale/de/key 0e\x00"))
	r.Log("1.2.3.4:5", false, nil)
	r.Log("1.2.3.4:5", false, []byte("{}\n"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], `1.2.3.4:5 C->S 17 bytes: "locale/de/key 0e\x00"`)
	assert.Contains(t, lines[1], `S->C 3 bytes: "{}\n"`)

	NewRaw(nil).Log("x", true, []byte("ignored"))
}

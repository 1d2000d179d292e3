package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scaledash/internal/adapters/logger"
	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{name: "simple message", msg: "fetched info", want: "fetched info\n"},
		{name: "empty message", msg: "", want: "\n"},
		{name: "multiline message", msg: "line1\nline2", want: "line1\nline2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("GET /info: 502 Bad Gateway")
	assert.Equal(t, "! GET /info: 502 Bad Gateway\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard error",
			err:  errors.New("boom"),
			want: "✗ Error: boom\n",
		},
		{
			name: "zerr chain",
			err:  zerr.Wrap(zerr.New("connection refused"), "failed to load history"),
			want: "✗ Error: failed to load history\n\n  Caused by:\n    → connection refused\n",
		},
		{
			name: "typed error ends the chain",
			err:  zerr.Wrap(&domain.TransportError{Method: "GET", Path: "/info", StatusCode: 500}, "failed to load info"),
			want: "✗ Error: failed to load info\n\n  Caused by:\n    → GET /info: 500 Internal Server Error\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("hello")
	lg.Error(zerr.With(zerr.New("invalid configuration"), "field", "api.timeout_ms"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "hello", info["msg"])

	var errLine map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &errLine))
	assert.Equal(t, "ERROR", errLine["level"])
	assert.Equal(t, "invalid configuration", errLine["msg"])
	assert.Equal(t, "api.timeout_ms", errLine["field"])

	buf.Reset()
	lg.SetJSON(false)
	lg.Info("pretty again")
	assert.Equal(t, "pretty again\n", buf.String())
}

func TestLogger_SetOutput_KeepsMode(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Warn("careful")

	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestLogger_ConcurrentUse(t *testing.T) {
	lg, buf := newTestLogger(t)

	var wg sync.WaitGroup
	for range 10 {
		wg.Go(func() { lg.Info("tick") })
	}
	wg.Go(func() { lg.SetOutput(buf) })
	wg.Wait()

	assert.NotEmpty(t, buf.String())
}

package logger

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	flags := log.Flags()
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
	fn()
	return buf.String()
}

func TestStdLogger_Debug(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		expectLog bool
	}{
		{"logs when debug enabled", true, true},
		{"silent when debug disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureLog(t, func() {
				New("[poller]", tt.debug).Debug("tick %d", 3)
			})
			if tt.expectLog {
				assert.Equal(t, "[poller] DEBUG: tick 3\n", out)
			} else {
				assert.Empty(t, out)
			}
		})
	}
}

func TestStdLogger_Levels(t *testing.T) {
	out := captureLog(t, func() {
		l := New("[ui]", false)
		l.Info("started")
		l.Warn("dropped %s", "update")
		l.Error("boom")
	})

	assert.Contains(t, out, "[ui] started\n")
	assert.Contains(t, out, "[ui] WARN: dropped update\n")
	assert.Contains(t, out, "[ui] ERROR: boom\n")
}

func TestNoop(t *testing.T) {
	out := captureLog(t, func() {
		l := Noop()
		l.Debug("x")
		l.Info("x")
		l.Warn("x")
		l.Error("x")
	})
	assert.Empty(t, out)
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()
	l.Warn("decode %s", "failed")
	l.Debug("ignored")

	msgs := l.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, LogMessage{Level: "warn", Message: "decode failed"}, msgs[0])
	assert.True(t, l.HasLevel("debug"))
	assert.False(t, l.HasLevel("error"))
}

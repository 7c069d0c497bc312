package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dicklesworthstone/sysdash/internal/logger"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRestoreTerminal(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewBufferLogger()

	restoreTerminal(&buf, log)

	out := buf.String()
	assert.Contains(t, out, "\x1b[?25h", "cursor shown")
	assert.Contains(t, out, "\x1b[2J", "screen cleared")
	assert.Contains(t, out, "\x1b[1;1H", "cursor homed")
	assert.Empty(t, log.Messages())
}

func TestRestoreTerminal_WriteFailureIsLogged(t *testing.T) {
	log := logger.NewBufferLogger()

	restoreTerminal(failingWriter{}, log)

	assert.True(t, log.HasLevel("warn"))
}

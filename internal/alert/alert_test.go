package alert

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/countdown/internal/logging"
	"github.com/stretchr/testify/assert"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestBell_WritesBEL(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf, true, logging.Nop())

	b.PlayAlert()
	b.PlayAlert()

	assert.Equal(t, "\a\a", buf.String())
}

func TestBell_SuccessLogsNothing(t *testing.T) {
	var buf, logs bytes.Buffer
	b := NewBell(&buf, true, logging.New(&logs, slog.LevelDebug))

	b.PlayAlert()

	assert.Equal(t, "\a", buf.String())
	assert.Empty(t, logs.String())
}

func TestBell_Disabled(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf, false, nil)

	b.PlayAlert()

	assert.Empty(t, buf.String())
}

func TestBell_WriteErrorIsLoggedNotRaised(t *testing.T) {
	var logs bytes.Buffer
	b := NewBell(failingWriter{}, true, logging.New(&logs, slog.LevelDebug))

	assert.NotPanics(t, b.PlayAlert)
	assert.Contains(t, logs.String(), "failed to play alert")
}

func TestFuncAndCounter(t *testing.T) {
	called := false
	Func(func() { called = true }).PlayAlert()
	assert.True(t, called)

	var c Counter
	c.PlayAlert()
	c.PlayAlert()
	assert.Equal(t, 2, c.Count())
}

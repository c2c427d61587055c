package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleExecutionError(t *testing.T) {
	assert.NoError(t, handleExecutionError(nil))
	assert.NoError(t, handleExecutionError(context.Canceled))
	assert.NoError(t, handleExecutionError(fmt.Errorf("input: %w", io.EOF)))

	boom := errors.New("boom")
	assert.Equal(t, boom, handleExecutionError(boom))
}

func TestCreateLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := createLogger(&buf, false, "warn")
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "error", "x")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "err=x")

	buf.Reset()
	logger, err = createLogger(&buf, true, "error")
	require.NoError(t, err)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug), "debug flag wins")

	_, err = createLogger(&buf, false, "chatty")
	assert.Error(t, err)
}

func TestLogCompletion(t *testing.T) {
	tests := []struct {
		name string
		err  error
		sig  os.Signal
		want string
	}{
		{"Clean exit", nil, nil, ""},
		{"Interrupt", context.Canceled, os.Interrupt, "[CTRL+C]\n>>> Interrupted.\n"},
		{"Terminate", context.Canceled, syscall.SIGTERM, "\n>>> Terminated.\n"},
		{"Cancelled", context.Canceled, nil, "\n>>> Interrupted.\n"},
		{"Other error", errors.New("boom"), nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logCompletion(&buf, tt.err, tt.sig)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSignalContext_Cancel(t *testing.T) {
	sc := NewSignalContext(context.Background())
	sc.Cancel()

	<-sc.Done()
	assert.ErrorIs(t, sc.Err(), context.Canceled)
	assert.Nil(t, sc.Signal())
}

func TestTerminalFile(t *testing.T) {
	_, ok := terminalFile(strings.NewReader(""))
	assert.False(t, ok)

	f, err := os.CreateTemp(t.TempDir(), "in")
	require.NoError(t, err)
	defer f.Close()
	_, ok = terminalFile(f)
	assert.False(t, ok, "regular files are not terminals")
}

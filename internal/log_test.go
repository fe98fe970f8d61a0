package internal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"trace", "TRACE", false},
		{"DEBUG", "DEBUG", false},
		{"", "INFO", false},
		{"warning", "WARN", false},
		{"error", "ERROR", false},
		{"fatal", "FATAL", false},
		{"panic", "PANIC", false},
		{"verbose", "INFO", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			level, err := ParseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, FormatLogLevel(level))
		})
	}

	level, err := ParseLogLevel("off")
	require.NoError(t, err)
	assert.Equal(t, Disable, level)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, LevelTrace)
	log.Log(t.Context(), LevelTrace, "probing", "signal", "simulator")

	out := buf.String()
	assert.Contains(t, out, "level=TRACE")
	assert.Contains(t, out, "msg=probing")
	assert.Contains(t, out, "signal=simulator")
	assert.Contains(t, out, "log_test.go:")
	assert.Contains(t, out, " UTC")

	buf.Reset()
	NewLogger(&buf, LevelInfo).Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestNoOpLogger(t *testing.T) {
	assert.False(t, NoOpLogger().Enabled(t.Context(), LevelPanic))
}

func TestNewLogWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buildenv.log")
	w := NewLogWriter(path)
	_, err := w.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}
